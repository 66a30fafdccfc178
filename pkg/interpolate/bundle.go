package interpolate

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/graphvalid/pkg/constraint"
)

// maxTemplateDepth caps recursive {key} resolution so that mutually
// referencing bundle entries cannot loop forever.
const maxTemplateDepth = 10

// keyRegex finds bundle references in the form {key}.
var keyRegex = regexp.MustCompile(`\{([^{}]+)\}`)

// paramRegex finds named parameters in the form %{name}.
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// BundleInterpolator is a batteries-included Interpolator backed by
// per-language message bundles. Templates of the form "{key}" are resolved
// against the bundle matching the configured language (recursively, so
// bundle entries may reference other entries), then named placeholders in
// the form "%{name}" are substituted from the context's parameters and
// expression variables. The validated value is always available as
// "%{validatedValue}".
type BundleInterpolator struct {
	bundles  map[language.Tag]map[string]string
	tags     []language.Tag
	lang     language.Tag
	fallback bool
	logger   *slog.Logger
}

// BundleOption configures a BundleInterpolator.
type BundleOption func(*BundleInterpolator)

// WithLanguage selects the language whose bundle resolves message keys.
// The closest registered bundle is chosen by language matching.
func WithLanguage(tag language.Tag) BundleOption {
	return func(b *BundleInterpolator) { b.lang = tag }
}

// WithFallbackToTemplate controls behavior for unresolved message keys.
// When enabled (the default) unknown keys are left in place in the rendered
// message; when disabled they fail with a validation-domain error.
func WithFallbackToTemplate(enabled bool) BundleOption {
	return func(b *BundleInterpolator) { b.fallback = enabled }
}

// WithBundleLogger sets the logger used to report missing keys and bundles.
func WithBundleLogger(logger *slog.Logger) BundleOption {
	return func(b *BundleInterpolator) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithMessages registers a message bundle for a language.
func WithMessages(tag language.Tag, messages map[string]string) BundleOption {
	return func(b *BundleInterpolator) { b.addBundle(tag, messages) }
}

// NewBundleInterpolator creates a bundle-backed interpolator. With no
// registered bundles it still performs parameter substitution, leaving
// message keys untouched.
func NewBundleInterpolator(opts ...BundleOption) *BundleInterpolator {
	b := &BundleInterpolator{
		bundles:  make(map[language.Tag]map[string]string),
		lang:     language.English,
		fallback: true,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// LoadYAML reads a flat key-to-message YAML document and registers it as the
// bundle for the given language, merging over any existing entries.
func (b *BundleInterpolator) LoadYAML(tag language.Tag, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read message bundle: %w", err)
	}
	messages := make(map[string]string)
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return fmt.Errorf("parse message bundle: %w", err)
	}
	b.addBundle(tag, messages)
	return nil
}

func (b *BundleInterpolator) addBundle(tag language.Tag, messages map[string]string) {
	bundle, ok := b.bundles[tag]
	if !ok {
		bundle = make(map[string]string, len(messages))
		b.bundles[tag] = bundle
		b.tags = append(b.tags, tag)
	}
	for k, v := range messages {
		bundle[k] = v
	}
}

// Interpolate implements Interpolator.
func (b *BundleInterpolator) Interpolate(template string, ctx Context) (string, error) {
	if err := checkBalanced(template); err != nil {
		return "", err
	}

	resolved, err := b.resolveKeys(template)
	if err != nil {
		return "", err
	}

	return b.substituteParams(resolved, ctx), nil
}

// resolveKeys replaces {key} references from the matched bundle until no
// reference resolves further.
func (b *BundleInterpolator) resolveKeys(template string) (string, error) {
	bundle := b.bundleFor(b.lang)

	current := template
	for i := 0; i < maxTemplateDepth; i++ {
		next, replaced, missing := replaceKeys(current, bundle)
		if missing != "" && !b.fallback {
			return "", newMissingKeyError(missing)
		}
		current = next
		if !replaced {
			// An unresolved key survives every iteration; warn once it
			// has settled.
			if missing != "" {
				b.logger.Warn("message key not found in bundle", "key", missing, "language", b.lang.String())
			}
			break
		}
	}
	return current, nil
}

// replaceKeys substitutes one level of {key} references. A brace group
// preceded by '%' is a parameter placeholder, not a bundle key, and is left
// for substituteParams.
func replaceKeys(template string, bundle map[string]string) (out string, replaced bool, missing string) {
	matches := keyRegex.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return template, false, ""
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > 0 && template[start-1] == '%' {
			continue
		}
		key := template[m[2]:m[3]]
		msg, ok := bundle[key]
		if !ok {
			missing = key
			continue
		}
		b.WriteString(template[last:start])
		b.WriteString(msg)
		last = end
		replaced = true
	}
	b.WriteString(template[last:])
	return b.String(), replaced, missing
}

// substituteParams replaces %{name} placeholders from parameters, expression
// variables, and the built-in validatedValue. Unknown placeholders stay in
// place.
func (b *BundleInterpolator) substituteParams(template string, ctx Context) string {
	return paramRegex.ReplaceAllStringFunc(template, func(match string) string {
		name := match[2 : len(match)-1]
		if v, ok := ctx.Parameters[name]; ok {
			return fmt.Sprintf("%v", v)
		}
		if v, ok := ctx.Expressions[name]; ok {
			return fmt.Sprintf("%v", v)
		}
		if name == "validatedValue" {
			return fmt.Sprintf("%v", ctx.Value)
		}
		return match
	})
}

// bundleFor picks the registered bundle closest to the requested language.
func (b *BundleInterpolator) bundleFor(tag language.Tag) map[string]string {
	if bundle, ok := b.bundles[tag]; ok {
		return bundle
	}
	if len(b.tags) == 0 {
		return nil
	}
	matcher := language.NewMatcher(b.tags)
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		b.logger.Warn("no message bundle for language", "language", tag.String())
		return b.bundles[b.tags[0]]
	}
	return b.bundles[b.tags[idx]]
}

func checkBalanced(template string) error {
	depth := 0
	for _, r := range template {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return newMalformedTemplateError(template)
			}
		}
	}
	if depth != 0 {
		return newMalformedTemplateError(template)
	}
	return nil
}

func newMalformedTemplateError(template string) error {
	return constraint.NewError("malformed_message_template", "unbalanced braces in template "+strings.TrimSpace(template))
}

func newMissingKeyError(key string) error {
	return constraint.NewError("unknown_message_key", "no bundle entry for message key "+key)
}

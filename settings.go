package graphvalid

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/graphvalid/pkg/config"
	"github.com/dmitrymomot/graphvalid/pkg/interpolate"
)

// Settings is the environment surface of a validation run.
type Settings struct {
	// FailFast tells the traversal engine to stop at the first violation.
	FailFast bool `env:"GRAPHVALID_FAIL_FAST" envDefault:"false"`

	// DisableProcessedTracking turns off already-validated bean tracking,
	// forcing full re-validation of every bean occurrence.
	DisableProcessedTracking bool `env:"GRAPHVALID_DISABLE_PROCESSED_TRACKING" envDefault:"false"`

	// MessageLanguage selects the message bundle language for the default
	// interpolator built by NewInterpolator (BCP 47 tag).
	MessageLanguage string `env:"GRAPHVALID_MESSAGE_LANGUAGE" envDefault:"en"`
}

// LoadSettings reads Settings from GRAPHVALID_* environment variables.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := config.Load(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// NewInterpolator builds the default bundle-backed interpolator configured
// for the settings' message language. Callers register their bundles through
// opts, which apply after the language and may override it.
func (s Settings) NewInterpolator(opts ...interpolate.BundleOption) (*interpolate.BundleInterpolator, error) {
	tag, err := language.Parse(s.MessageLanguage)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMessageLanguage, s.MessageLanguage)
	}
	all := append([]interpolate.BundleOption{interpolate.WithLanguage(tag)}, opts...)
	return interpolate.NewBundleInterpolator(all...), nil
}

package service

import (
	"context"
	"strconv"

	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/store"
)

const (
	prefThemeColor = "theme.color"
	prefThemeDark  = "theme.dark"
)

// PreferenceService remembers the dashboard theme between runs.
type PreferenceService struct {
	repo store.PreferenceRepository
}

func NewPreferenceService(repo store.PreferenceRepository) *PreferenceService {
	return &PreferenceService{repo: repo}
}

// LoadTheme returns the saved theme, falling back to def for every value
// that was never saved.
func (p *PreferenceService) LoadTheme(ctx context.Context, def config.Theme) (config.Theme, error) {
	theme := def

	color, ok, err := p.repo.GetPreference(ctx, prefThemeColor)
	if err != nil {
		return def, err
	}
	if ok && color != "" {
		theme.Color = color
	}

	dark, ok, err := p.repo.GetPreference(ctx, prefThemeDark)
	if err != nil {
		return def, err
	}
	if ok {
		if v, err := strconv.ParseBool(dark); err == nil {
			theme.Dark = v
		}
	}

	return theme, nil
}

func (p *PreferenceService) SaveTheme(ctx context.Context, theme config.Theme) error {
	if err := p.repo.SetPreference(ctx, prefThemeColor, theme.Color); err != nil {
		return err
	}
	return p.repo.SetPreference(ctx, prefThemeDark, strconv.FormatBool(theme.Dark))
}

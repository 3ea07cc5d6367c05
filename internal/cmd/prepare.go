package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/unrss/envprep/internal/env"
	"github.com/unrss/envprep/internal/profile"
)

// prepareOptions are the global flags that shape the prepared environment.
type prepareOptions struct {
	files     []string
	profiles  []string
	sets      []string
	prepends  []string
	noInherit bool
}

// overlay builds the variables layered on top of the inherited
// environment: env files, then profiles, then --set entries, then
// prepended directories.
func (a *app) overlay() (*env.Env, error) {
	overlay := env.New()

	for _, file := range a.opts.files {
		e, status, err := profile.ReadFile(file)
		if err != nil {
			return nil, err
		}
		a.warnDecode("env file", file, status)
		overlay.Merge(e)
	}

	if len(a.opts.profiles) > 0 {
		store, err := a.profileStore()
		if err != nil {
			return nil, err
		}
		for _, name := range a.opts.profiles {
			e, status, err := store.Load(name)
			if err != nil {
				return nil, fmt.Errorf("load profile: %w", err)
			}
			a.warnDecode("profile", name, status)
			overlay.Merge(e)
		}
	}

	for _, kv := range a.opts.sets {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q: want KEY=VALUE", kv)
		}
		overlay.Set(key, value)
	}

	prepends := slices.Concat(a.cfg.Prepend, a.opts.prepends)
	for _, dir := range slices.Backward(prepends) {
		overlay.Paths().Prepend(dir)
	}

	a.logger.Debug("overlay built",
		"files", len(a.opts.files),
		"profiles", len(a.opts.profiles),
		"vars", overlay.Vars().Len(),
		"paths", overlay.Paths().Len())

	return overlay, nil
}

// prepare returns the full environment a child process would inherit.
func (a *app) prepare() (*env.Env, error) {
	overlay, err := a.overlay()
	if err != nil {
		return nil, err
	}
	return env.Full(overlay, a.inherit()), nil
}

func (a *app) inherit() bool {
	return a.cfg.Inherit && !a.opts.noInherit
}

func (a *app) profileStore() (*profile.Store, error) {
	var (
		store *profile.Store
		err   error
	)
	if a.cfg.ProfileDir != "" {
		store, err = profile.NewStoreWithDir(a.cfg.ProfileDir)
	} else {
		store, err = profile.NewStore()
	}
	if err != nil {
		return nil, fmt.Errorf("open profile store: %w", err)
	}
	return store, nil
}

func (a *app) warnDecode(kind, name string, status env.DecodeStatus) {
	switch status {
	case env.DecodeEmpty:
		a.logger.Warn(kind+" has no usable content", "name", name)
	case env.DecodePartial:
		a.logger.Warn(kind+" partially decoded", "name", name)
	}
}

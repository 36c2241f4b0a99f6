package config

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/zerr"
)

var localSeparators = strings.NewReplacer("_", ".", "-", ".")

// validatePins rejects "name==version" entries whose version cannot be read as a
// Python package version.
func validatePins(packages []string) error {
	for _, pkg := range packages {
		name, version, pinned := domain.SplitPin(pkg)
		if !pinned {
			continue
		}
		if name == "" {
			return zerr.With(domain.ErrInvalidPin, "package", pkg)
		}
		if err := checkPinVersion(version); err != nil {
			return zerr.With(zerr.With(domain.ErrInvalidPin, "package", pkg), "reason", err.Error())
		}
	}
	return nil
}

func checkPinVersion(version string) error {
	if strings.HasSuffix(version, ".*") {
		_, err := semver.NewConstraint(version)
		return err
	}
	_, err := parsePythonVersion(version)
	return err
}

// parsePythonVersion maps a PEP 440 version onto semver: the release keeps its first three
// segments, pre/post/dev segments become the prerelease and the rest becomes build metadata.
// The epoch is dropped.
func parsePythonVersion(v string) (*semver.Version, error) {
	v = strings.TrimSpace(v)
	if _, rest, ok := strings.Cut(v, "!"); ok {
		v = rest
	}
	v = strings.TrimPrefix(strings.ToLower(v), "v")
	public, local, _ := strings.Cut(v, "+")

	end := strings.IndexFunc(public, func(r rune) bool { return r != '.' && (r < '0' || r > '9') })
	if end < 0 {
		end = len(public)
	}
	release := strings.Split(strings.TrimSuffix(public[:end], "."), ".")
	for len(release) < 3 {
		release = append(release, "0")
	}

	s := strings.Join(release[:3], ".")
	if suffix := strings.TrimLeft(public[end:], ".-_"); suffix != "" {
		s += "-" + localSeparators.Replace(suffix)
	}
	meta := release[3:]
	if local != "" {
		meta = append(meta, localSeparators.Replace(local))
	}
	if len(meta) > 0 {
		s += "+" + strings.Join(meta, ".")
	}
	return semver.NewVersion(s)
}

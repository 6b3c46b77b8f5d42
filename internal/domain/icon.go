package domain

import "fmt"

// IconKind names a glyph from the fixed icon set. Records carry the kind, never
// the glyph itself; the icons package resolves it at render time.
type IconKind string

const (
	IconShield       IconKind = "shield"
	IconShieldCheck  IconKind = "shield-check"
	IconLock         IconKind = "lock"
	IconLockClosed   IconKind = "lock-closed"
	IconCloud        IconKind = "cloud"
	IconNetwork      IconKind = "network"
	IconBug          IconKind = "bug"
	IconGlobe        IconKind = "globe"
	IconDatabase     IconKind = "database"
	IconServer       IconKind = "server"
	IconMobile       IconKind = "mobile"
	IconTools        IconKind = "tools"
	IconCode         IconKind = "code"
	IconGraduation   IconKind = "graduation-cap"
	IconGitHub       IconKind = "github"
	IconLinkedIn     IconKind = "linkedin"
	IconEnvelope     IconKind = "envelope"
	IconExternalLink IconKind = "external-link"
	IconSun          IconKind = "sun"
	IconMoon         IconKind = "moon"
	IconArrowDown    IconKind = "arrow-down"
)

var knownIcons = map[IconKind]struct{}{
	IconShield: {}, IconShieldCheck: {}, IconLock: {}, IconLockClosed: {},
	IconCloud: {}, IconNetwork: {}, IconBug: {}, IconGlobe: {},
	IconDatabase: {}, IconServer: {}, IconMobile: {}, IconTools: {},
	IconCode: {}, IconGraduation: {}, IconGitHub: {}, IconLinkedIn: {},
	IconEnvelope: {}, IconExternalLink: {}, IconSun: {}, IconMoon: {},
	IconArrowDown: {},
}

// Valid reports whether k belongs to the fixed icon set.
func (k IconKind) Valid() bool {
	_, ok := knownIcons[k]
	return ok
}

// ParseIconKind converts s to an IconKind, rejecting kinds outside the set.
func ParseIconKind(s string) (IconKind, error) {
	k := IconKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownIcon, s)
	}
	return k, nil
}

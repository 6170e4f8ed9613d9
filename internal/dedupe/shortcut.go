package dedupe

import (
	"regexp"
	"strings"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

// ShortcutResolver decides whether a .lnk shortcut and an .exe point at the
// same underlying product. The matching is inherently fuzzy, so it lives
// behind an interface: a more precise heuristic (e.g. resolving the link
// target) can replace it without touching the dedup pass.
type ShortcutResolver interface {
	SameProduct(lnkPath, exePath string) bool
}

// Installer path shapes the vendor heuristic understands:
//
//	.../Program Files/<vendor>/...
//	.../Program Files (x86)/<vendor>/...
//	.../Programs/<vendor>/...
var (
	programFilesRe = regexp.MustCompile(`program files( \(x86\))?/([^/]+)/`)
	programsDirRe  = regexp.MustCompile(`/programs/([^/]+)/`)
)

// VendorResolver is the default ShortcutResolver. It matches by stem
// containment between the shortcut and executable names, and by a shared
// vendor directory extracted from known installer path shapes.
type VendorResolver struct{}

// SameProduct implements ShortcutResolver.
func (VendorResolver) SameProduct(lnkPath, exePath string) bool {
	lnkStem := candidate.Stem(lnkPath)
	exeStem := candidate.Stem(exePath)
	if lnkStem == "" || exeStem == "" {
		return false
	}

	if strings.Contains(lnkStem, exeStem) || strings.Contains(exeStem, lnkStem) {
		return true
	}

	lnkVendor := vendorDir(lnkPath)
	exeVendor := vendorDir(exePath)
	return lnkVendor != "" && lnkVendor == exeVendor
}

// vendorDir extracts the vendor directory name from a normalized path, or
// "" when the path matches no known installer shape.
func vendorDir(path string) string {
	p := candidate.NormalizePath(path)
	if m := programFilesRe.FindStringSubmatch(p); m != nil {
		return m[2]
	}
	if m := programsDirRe.FindStringSubmatch(p); m != nil {
		return m[1]
	}
	return ""
}

package mediainfo

import "github.com/blang/semver"

const AppName = "mediascan"

var AppVersion = "dev"

func SetAppVersion(version string) {
	if version != "" {
		AppVersion = version
	}
}

// FormatVersion renders release versions as "v1.2.3"; anything that is not
// semver (such as "dev") is returned unchanged.
func FormatVersion(version string) string {
	parsed, err := semver.ParseTolerant(version)
	if err != nil {
		return version
	}
	return "v" + parsed.String()
}

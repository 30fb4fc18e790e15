package useragent

import "strings"

const Desconocido = "Desconocido"

type Info struct {
	Browser string
	OS      string
	Device  string
}

// Parse clasifica un User-Agent en navegador, sistema y tipo de
// dispositivo. Es heurístico a propósito: alcanza para el dashboard.
func Parse(ua string) Info {
	if ua == "" {
		return Info{Browser: Desconocido, OS: Desconocido, Device: Desconocido}
	}

	lower := strings.ToLower(ua)
	info := Info{Browser: Desconocido, OS: Desconocido, Device: "desktop"}

	// iOS va antes que macOS: los iPhone se anuncian como "like Mac OS X".
	switch {
	case strings.Contains(lower, "iphone"), strings.Contains(lower, "ipad"), strings.Contains(lower, "ipod"):
		info.OS = "iOS"
	case strings.Contains(lower, "windows"):
		info.OS = "Windows"
	case strings.Contains(lower, "macintosh"), strings.Contains(lower, "mac os x"):
		info.OS = "macOS"
	case strings.Contains(lower, "android"):
		info.OS = "Android"
	case strings.Contains(lower, "linux"):
		info.OS = "Linux"
	}

	// El orden importa: Edge y Chrome se anuncian también como Safari.
	switch {
	case strings.Contains(lower, "edg"):
		info.Browser = "Edge"
	case strings.Contains(lower, "chrome"):
		info.Browser = "Chrome"
	case strings.Contains(lower, "safari"):
		info.Browser = "Safari"
	case strings.Contains(lower, "firefox"):
		info.Browser = "Firefox"
	case strings.Contains(lower, "msie"), strings.Contains(lower, "trident"):
		info.Browser = "Internet Explorer"
	}

	switch {
	case strings.Contains(lower, "mobi"), strings.Contains(lower, "android"), strings.Contains(lower, "iphone"):
		info.Device = "mobile"
	case strings.Contains(lower, "ipad"), strings.Contains(lower, "tablet"):
		info.Device = "tablet"
	}

	return info
}

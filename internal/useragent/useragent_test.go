package useragent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want Info
	}{
		{
			name: "vacío",
			ua:   "",
			want: Info{Browser: Desconocido, OS: Desconocido, Device: Desconocido},
		},
		{
			name: "chrome en windows",
			ua:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
			want: Info{Browser: "Chrome", OS: "Windows", Device: "desktop"},
		},
		{
			name: "edge se distingue de chrome",
			ua:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36 Edg/126.0.0.0",
			want: Info{Browser: "Edge", OS: "Windows", Device: "desktop"},
		},
		{
			name: "safari en iphone",
			ua:   "Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Mobile/15E148 Safari/604.1",
			want: Info{Browser: "Safari", OS: "iOS", Device: "mobile"},
		},
		{
			name: "firefox en linux",
			ua:   "Mozilla/5.0 (X11; Linux x86_64; rv:127.0) Gecko/20100101 Firefox/127.0",
			want: Info{Browser: "Firefox", OS: "Linux", Device: "desktop"},
		},
		{
			name: "chrome en android es mobile",
			ua:   "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Mobile Safari/537.36",
			want: Info{Browser: "Chrome", OS: "Android", Device: "mobile"},
		},
		{
			name: "ipad es tablet",
			ua:   "Mozilla/5.0 (iPad; CPU OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Safari/604.1",
			want: Info{Browser: "Safari", OS: "iOS", Device: "tablet"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.ua))
		})
	}
}

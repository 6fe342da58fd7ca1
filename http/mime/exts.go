package mime

import (
	"github.com/indigo-web/utils/strcomp"
)

// Extension maps a file extension (including the leading dot) into its MIME.
var Extension = map[string]MIME{
	".avif":  AVIF,
	".css":   CSS,
	".csv":   CSV,
	".gif":   GIF,
	".htm":   HTML,
	".html":  HTML,
	".jpeg":  JPEG,
	".jpg":   JPEG,
	".js":    JS,
	".mjs":   JS,
	".json":  JSON,
	".pdf":   PDF,
	".png":   PNG,
	".svg":   SVG,
	".wasm":  WASM,
	".webp":  WEBP,
	".xml":   XML,
	".gz":    GZIP,
	".yaml":  YAML,
	".yml":   YAML,
	".zip":   ZIP,
	".ico":   ICO,
	".txt":   TXT,
	".woff":  WOFF,
	".woff2": WOFF2,
	".mp4":   MP4,
	".mp3":   MP3,
}

// ByExtension returns the MIME registered for the extension. An exact match is tried first,
// then a case-insensitive one, so .HTML and .Png are recognized as well. Unknown extensions
// result in OctetStream.
func ByExtension(ext string) MIME {
	if m, found := Extension[ext]; found {
		return m
	}

	for known, m := range Extension {
		if strcomp.EqualFold(known, ext) {
			return m
		}
	}

	return OctetStream
}

package media

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var allowedImageTypes = map[string]string{
	"image/png":     "PNG",
	"image/jpeg":    "JPEG",
	"image/webp":    "WebP",
	"image/gif":     "GIF",
	"image/svg+xml": "SVG",
}

var allowedImageDescription = buildDescription()

func buildDescription() string {
	names := make([]string, 0, len(allowedImageTypes))
	for _, name := range allowedImageTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return humanReadableList(names)
}

func humanReadableList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return fmt.Sprintf("%s or %s", items[0], items[1])
	default:
		return fmt.Sprintf("%s, or %s", strings.Join(items[:len(items)-1], ", "), items[len(items)-1])
	}
}

// sniffImageType detects the content type from the bytes themselves, ignoring
// whatever the client declared.
func sniffImageType(data []byte) (string, error) {
	detected := mimetype.Detect(data)
	for m := detected; m != nil; m = m.Parent() {
		mediaType := strings.ToLower(strings.SplitN(m.String(), ";", 2)[0])
		if _, ok := allowedImageTypes[mediaType]; ok {
			return mediaType, nil
		}
	}
	return "", fmt.Errorf("unsupported content type %s", detected.String())
}

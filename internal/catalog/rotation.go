package catalog

const fallbackRotationSize = 3

// FeaturedRotation picks the entries shown in the hero carousel: every
// featured and available entry, or failing that the first three available
// ones. The result is empty only when nothing is available.
func FeaturedRotation(entries []MenuEntry) []MenuEntry {
	featured := make([]MenuEntry, 0)
	for _, entry := range entries {
		if entry.Featured && entry.Available {
			featured = append(featured, entry.Clone())
		}
	}
	if len(featured) > 0 {
		return featured
	}

	available := Available(entries)
	if len(available) > fallbackRotationSize {
		available = available[:fallbackRotationSize]
	}
	return available
}

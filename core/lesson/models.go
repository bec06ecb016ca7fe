package lesson

// Resource is an external reading attached to a Lesson.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Lesson is immutable once loaded from storage.
type Lesson struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	PriceInINR  float64    `json:"priceInINR"` // 0 means free
	Content     string     `json:"content"`
	Resources   []Resource `json:"resources"`
}

func (l Lesson) IsFree() bool {
	return l.PriceInINR <= 0
}

// IsAccessible reports whether a learner may open the lesson.
// Free lessons are always accessible; paid ones only once completed, purchase and completion being the same fact.
func (l Lesson) IsAccessible(completed bool) bool {
	return l.IsFree() || completed
}

package posts

import "time"

// DatePost is a scored date plan. Rows are written once and never updated.
type DatePost struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"type:varchar(200);not null"`
	Location    string `gorm:"type:varchar(100);not null"`
	Activity    string `gorm:"type:varchar(200);not null"`
	Budget      int64  `gorm:"type:integer;not null"`
	Duration    string `gorm:"type:varchar(50);not null"`
	Description string `gorm:"type:text;not null"`
	Score       int    `gorm:"not null;index:idx_date_posts_score"` // 50..100
	AIComment   string `gorm:"column:ai_comment;type:text;not null"`
	CreatedAt   time.Time
}

// View is the JSON shape returned by the API.
type View struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Activity    string `json:"activity"`
	Budget      int64  `json:"budget"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	Score       int    `json:"score"`
	Comment     string `json:"comment"`
	CreatedAt   string `json:"createdAt"`
}

func (p DatePost) ToView() View {
	return View{
		ID:          p.ID,
		Title:       p.Title,
		Location:    p.Location,
		Activity:    p.Activity,
		Budget:      p.Budget,
		Duration:    p.Duration,
		Description: p.Description,
		Score:       p.Score,
		Comment:     p.AIComment,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

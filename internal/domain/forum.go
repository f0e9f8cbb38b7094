package domain

// Question Model (a forum thread starter)
type Question struct {
	ID        uint     `gorm:"primaryKey" json:"id"`                   // Primary key
	UserID    uint     `gorm:"index;not null" json:"user_id"`          // Foreign key to the asking User
	Title     string   `gorm:"not null" json:"title"`                  // Question title
	Content   string   `gorm:"not null" json:"content"`                // Question body
	Category  string   `json:"category"`                               // health, feeding, breeding, marketing or general
	CreatedAt int64    `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
	Answers   []Answer `gorm:"foreignKey:QuestionID" json:"answers"`   // One-to-many answers
}

// Answer Model (a reply to a question)
type Answer struct {
	ID         uint   `gorm:"primaryKey" json:"id"`                   // Primary key
	QuestionID uint   `gorm:"index;not null" json:"question_id"`      // Foreign key to Question
	UserID     uint   `gorm:"index;not null" json:"user_id"`          // Foreign key to the answering User
	Content    string `gorm:"not null" json:"content"`                // Answer body
	CreatedAt  int64  `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}

package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Submission rows are written by the public forms only. Admins may read,
// mark as read and delete them.
type Submission interface {
	Record
	Validatable
	Kind() string
	ReplyTo() string
}

type ContactMessage struct {
	Base
	Name    string `gorm:"size:100;not null" json:"name" form:"name"`
	Email   string `gorm:"size:255;not null" json:"email" form:"email"`
	Phone   string `gorm:"size:50" json:"phone" form:"phone"`
	Company string `gorm:"size:255" json:"company" form:"company"`
	Subject string `gorm:"size:255" json:"subject" form:"subject"`
	Message string `gorm:"type:text;not null" json:"message" form:"message"`
	Locale  string `gorm:"size:5" json:"locale" form:"locale"`
	IsRead  bool   `gorm:"index;not null" json:"isRead" form:"-"`
}

func (m *ContactMessage) Kind() string    { return "contact" }
func (m *ContactMessage) ReplyTo() string { return m.Email }

func (m ContactMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&m.Email, validation.Required, is.EmailFormat),
		validation.Field(&m.Phone, validation.Length(0, 50)),
		validation.Field(&m.Subject, validation.Length(0, 255)),
		validation.Field(&m.Message, validation.Required, validation.Length(1, 5000)),
	)
}

type QuoteRequest struct {
	Base
	Name     string `gorm:"size:100;not null" json:"name" form:"name"`
	Email    string `gorm:"size:255;not null" json:"email" form:"email"`
	Phone    string `gorm:"size:50" json:"phone" form:"phone"`
	Company  string `gorm:"size:255" json:"company" form:"company"`
	Product  string `gorm:"size:255" json:"product" form:"product"`
	Quantity string `gorm:"size:100" json:"quantity" form:"quantity"`
	Message  string `gorm:"type:text;not null" json:"message" form:"message"`
	Locale   string `gorm:"size:5" json:"locale" form:"locale"`
	IsRead   bool   `gorm:"index;not null" json:"isRead" form:"-"`
}

func (q *QuoteRequest) Kind() string    { return "quote" }
func (q *QuoteRequest) ReplyTo() string { return q.Email }

func (q QuoteRequest) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&q.Email, validation.Required, is.EmailFormat),
		validation.Field(&q.Phone, validation.Length(0, 50)),
		validation.Field(&q.Product, validation.Length(0, 255)),
		validation.Field(&q.Quantity, validation.Length(0, 100)),
		validation.Field(&q.Message, validation.Required, validation.Length(1, 5000)),
	)
}

type JobApplication struct {
	Base
	Name     string `gorm:"size:100;not null" json:"name" form:"name"`
	Email    string `gorm:"size:255;not null" json:"email" form:"email"`
	Phone    string `gorm:"size:50" json:"phone" form:"phone"`
	Position string `gorm:"size:255;not null" json:"position" form:"position"`
	Message  string `gorm:"type:text" json:"message" form:"message"`
	CVURL    string `gorm:"column:cv_url;size:500" json:"cvUrl" form:"-"`
	Locale   string `gorm:"size:5" json:"locale" form:"locale"`
	IsRead   bool   `gorm:"index;not null" json:"isRead" form:"-"`
}

func (j *JobApplication) Kind() string    { return "job-application" }
func (j *JobApplication) ReplyTo() string { return j.Email }

func (j JobApplication) Validate() error {
	return validation.ValidateStruct(&j,
		validation.Field(&j.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&j.Email, validation.Required, is.EmailFormat),
		validation.Field(&j.Phone, validation.Length(0, 50)),
		validation.Field(&j.Position, validation.Required, validation.Length(1, 255)),
		validation.Field(&j.Message, validation.Length(0, 5000)),
	)
}

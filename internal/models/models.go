package models

import (
	"time"
)

type Role string

const (
	RoleStudent  Role = "student"
	RoleEmployer Role = "employer"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Role   Role   `json:"role"`
}

// Session is the record asserting who is signed in. It is read once per request
// and never modified afterwards.
type Session struct {
	Token string
	User  User
}

func (s *Session) HasRole(roles ...Role) bool {
	if s == nil {
		return false
	}
	for _, role := range roles {
		if s.User.Role == role {
			return true
		}
	}
	return false
}

const (
	JobStatusPending  = "pending"
	JobStatusActive   = "active"
	JobStatusClosed   = "closed"
	JobStatusRejected = "rejected"
)

type Employer struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email,omitempty"`
}

type Job struct {
	JobID           string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Status          string    `json:"status"`
	Employer        Employer  `json:"employer"`
	Skills          []string  `json:"skills"`
	Location        string    `json:"location"`
	JobType         string    `json:"jobType"`
	WorkMode        string    `json:"workMode"`
	Salary          string    `json:"salary,omitempty"`
	RejectionReason string    `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (j Job) Pending() bool {
	return j.Status == JobStatusPending
}

type Author struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role,omitempty"`
}

type Comment struct {
	CommentID string    `json:"id"`
	Author    Author    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type Report struct {
	ReportID   string    `json:"id"`
	ReporterID string    `json:"reporterId"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Post struct {
	PostID        string    `json:"id"`
	Author        Author    `json:"author"`
	Content       string    `json:"content"`
	Visibility    string    `json:"visibility"`
	IsHidden      bool      `json:"isHidden"`
	IsReported    bool      `json:"isReported"`
	Likes         []string  `json:"likes"`
	Comments      []Comment `json:"comments"`
	Reports       []Report  `json:"reports"`
	LikesCount    int       `json:"likesCount"`
	CommentsCount int       `json:"commentsCount"`
	ReportsCount  int       `json:"reportsCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Course struct {
	CourseID      string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Level         string   `json:"level"`
	SkillsCovered []string `json:"skillsCovered"`
	Duration      string   `json:"duration"`
	Rating        float64  `json:"rating"`
	RatingCount   int      `json:"ratingCount"`
	Instructor    string   `json:"instructor,omitempty"`
}

type Certificate struct {
	CertificateID string    `json:"id"`
	ObjectKey     string    `json:"objectKey"`
	IssuedAt      time.Time `json:"issuedAt"`
}

type Enrollment struct {
	EnrollmentID     string       `json:"id"`
	Course           Course       `json:"course"`
	Progress         int          `json:"progress"`
	CompletedLessons []string     `json:"completedLessons"`
	Completed        bool         `json:"completed"`
	Certificate      *Certificate `json:"certificate,omitempty"`
	EnrolledAt       time.Time    `json:"enrolledAt"`
}

type Profile struct {
	UserID     string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	University string   `json:"university"`
	Degree     string   `json:"degree"`
	Skills     []string `json:"skills"`
	ResumeURL  string   `json:"resumeUrl,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

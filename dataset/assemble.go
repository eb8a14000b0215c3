package dataset

import (
	"time"

	"edugen/generator"
	"edugen/models"
)

// MLRow is the denormalized training row: one enrollment joined with its
// user, course, progress, interaction and category data. Collision-prone
// column names carry the losing table as a suffix, mirroring the CSV header.
type MLRow struct {
	EnrollmentID uint
	UserID       uint
	CourseID     uint
	EnrolledAt   time.Time
	IsPaid       bool

	UserName      string
	Email         string
	Role          string
	UserStatus    string
	EmailVerified bool
	UserCreatedAt time.Time
	UserUpdatedAt time.Time

	Title             string
	CourseDescription string
	InstructorID      uint
	CategoryID        uint
	CourseStatus      string
	Visibility        string
	Price             float64
	IsFree            bool
	ThumbnailURL      string
	CourseCreatedAt   time.Time
	CourseUpdatedAt   time.Time

	ProgressPercentage int
	IsCompleted        bool
	CertificateURL     string
	LastAccessed       time.Time
	CompletedAt        *time.Time

	// Interaction columns are pointers: the interaction join is a left join
	// and unmatched rows stay empty in the CSV.
	TimeSpentMinutes *int
	NumSessions      *int
	ImplicitRating   *int
	LastInteraction  *time.Time

	CategoryName        string
	CategoryDescription string
}

// Assemble joins the entity tables into one row per enrollment. User, course,
// progress and category are inner joins; an enrollment without a match in any
// of them is dropped. Interactions join left.
func Assemble(t *generator.Tables) []MLRow {
	usersByID := make(map[uint]models.User, len(t.Users))
	for _, u := range t.Users {
		usersByID[u.ID] = u
	}
	coursesByID := make(map[uint]models.Course, len(t.Courses))
	for _, c := range t.Courses {
		coursesByID[c.ID] = c
	}
	categoriesByID := make(map[uint]models.CourseCategory, len(t.Categories))
	for _, c := range t.Categories {
		categoriesByID[c.ID] = c
	}

	type pair struct{ userID, courseID uint }
	progressByPair := make(map[pair]models.Progress, len(t.Progress))
	for _, p := range t.Progress {
		progressByPair[pair{p.UserID, p.CourseID}] = p
	}
	interactionByPair := make(map[pair]models.UserInteraction, len(t.Interactions))
	for _, i := range t.Interactions {
		interactionByPair[pair{i.UserID, i.CourseID}] = i
	}

	rows := make([]MLRow, 0, len(t.Enrollments))
	for _, e := range t.Enrollments {
		user, ok := usersByID[e.UserID]
		if !ok {
			continue
		}
		course, ok := coursesByID[e.CourseID]
		if !ok {
			continue
		}
		progress, ok := progressByPair[pair{e.UserID, e.CourseID}]
		if !ok {
			continue
		}
		category, ok := categoriesByID[course.CategoryID]
		if !ok {
			continue
		}

		row := MLRow{
			EnrollmentID: e.ID,
			UserID:       e.UserID,
			CourseID:     e.CourseID,
			EnrolledAt:   e.EnrolledAt,
			IsPaid:       e.IsPaid,

			UserName:      user.Name,
			Email:         user.Email,
			Role:          user.Role,
			UserStatus:    user.Status,
			EmailVerified: user.EmailVerified,
			UserCreatedAt: user.CreatedAt,
			UserUpdatedAt: user.UpdatedAt,

			Title:             course.Title,
			CourseDescription: course.Description,
			InstructorID:      course.InstructorID,
			CategoryID:        course.CategoryID,
			CourseStatus:      course.Status,
			Visibility:        course.Visibility,
			Price:             course.Price,
			IsFree:            course.IsFree,
			ThumbnailURL:      course.ThumbnailURL,
			CourseCreatedAt:   course.CreatedAt,
			CourseUpdatedAt:   course.UpdatedAt,

			ProgressPercentage: progress.ProgressPercentage,
			IsCompleted:        progress.IsCompleted,
			CertificateURL:     progress.CertificateURL,
			LastAccessed:       progress.LastAccessed,
			CompletedAt:        progress.CompletedAt,

			CategoryName:        category.Name,
			CategoryDescription: category.Description,
		}

		if interaction, ok := interactionByPair[pair{e.UserID, e.CourseID}]; ok {
			row.TimeSpentMinutes = &interaction.TimeSpentMinutes
			row.NumSessions = &interaction.NumSessions
			row.ImplicitRating = &interaction.ImplicitRating
			last := interaction.LastInteraction
			row.LastInteraction = &last
		}
		rows = append(rows, row)
	}
	return rows
}

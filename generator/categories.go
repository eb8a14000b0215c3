package generator

import "edugen/models"

// Categories returns the fixed course category catalog. Course generation
// treats this as a closed enumeration; ids are stable across runs.
func Categories() []models.CourseCategory {
	return []models.CourseCategory{
		{ID: 1, Name: "Programming", Description: "Programming and software development courses"},
		{ID: 2, Name: "Design", Description: "Graphic design, UI/UX, and creative courses"},
		{ID: 3, Name: "Business", Description: "Business, marketing, and entrepreneurship"},
		{ID: 4, Name: "Languages", Description: "Foreign language learning courses"},
		{ID: 5, Name: "Science", Description: "Science, mathematics, and engineering"},
		{ID: 6, Name: "Arts", Description: "Music, art, and creative expression"},
		{ID: 7, Name: "Health", Description: "Health, fitness, and wellness courses"},
		{ID: 8, Name: "Technology", Description: "Technology, AI, and digital skills"},
		{ID: 9, Name: "Personal Development", Description: "Self-improvement and life skills"},
		{ID: 10, Name: "Academic", Description: "Academic subjects and test preparation"},
	}
}

package generator

import (
	"fmt"
	"strings"
)

// Course title templates keyed by category name. Every catalog category must
// have an entry here and in courseSubjects.
var courseTemplates = map[string][]string{
	"Programming": {
		"Introduction to %s", "Advanced %s", "%s for Beginners", "Master %s",
		"%s Bootcamp", "Complete %s Guide", "%s Fundamentals", "Professional %s",
	},
	"Design": {
		"%s Design Principles", "Creative %s Workshop", "%s Masterclass",
		"Modern %s Techniques", "%s for Professionals", "Digital %s Course",
	},
	"Business": {
		"%s Strategy", "Introduction to %s", "%s Management", "Advanced %s",
		"%s for Entrepreneurs", "Professional %s Skills",
	},
	"Languages": {
		"Learn %s - Beginner", "%s Conversation", "Advanced %s",
		"Business %s", "%s Grammar Mastery", "%s for Travelers",
	},
	"Science": {
		"Introduction to %s", "Advanced %s", "%s Fundamentals",
		"Applied %s", "%s Laboratory", "Theoretical %s",
	},
	"Arts": {
		"%s Basics", "Creative %s Workshop", "%s Masterclass",
		"Modern %s Techniques", "Classical %s", "%s History",
	},
	"Health": {
		"%s Essentials", "Complete %s Guide", "%s for Beginners",
		"Advanced %s", "Professional %s", "%s Certification",
	},
	"Technology": {
		"Introduction to %s", "%s Fundamentals", "Advanced %s",
		"%s Implementation", "Professional %s", "%s Best Practices",
	},
	"Personal Development": {
		"%s Mastery", "Effective %s", "%s Skills",
		"Advanced %s", "Professional %s", "%s Workshop",
	},
	"Academic": {
		"%s Fundamentals", "Advanced %s", "%s Preparation",
		"Complete %s Course", "%s Mastery", "Professional %s",
	},
}

// Subject matter keyed by category name.
var courseSubjects = map[string][]string{
	"Programming":          {"Python", "JavaScript", "Java", "C++", "React", "Node.js", "SQL", "Machine Learning"},
	"Design":               {"UI/UX", "Graphic Design", "Web Design", "Logo Design", "Branding", "Typography"},
	"Business":             {"Marketing", "Finance", "Leadership", "Project Management", "Sales", "Analytics"},
	"Languages":            {"Spanish", "French", "German", "Chinese", "Japanese", "Italian"},
	"Science":              {"Physics", "Chemistry", "Biology", "Mathematics", "Statistics", "Data Science"},
	"Arts":                 {"Photography", "Music Theory", "Drawing", "Painting", "Creative Writing", "Film"},
	"Health":               {"Nutrition", "Fitness", "Yoga", "Mental Health", "First Aid", "Wellness"},
	"Technology":           {"Cloud Computing", "Cybersecurity", "AI", "Blockchain", "IoT", "DevOps"},
	"Personal Development": {"Time Management", "Communication", "Productivity", "Goal Setting", "Mindfulness", "Career"},
	"Academic":             {"Test Prep", "Study Skills", "Research Methods", "Writing", "Critical Thinking", "Logic"},
}

// courseDescriptions returns the five canned description variants for a subject.
func courseDescriptions(subject string) []string {
	s := strings.ToLower(subject)
	return []string{
		fmt.Sprintf("Comprehensive %s course covering fundamental concepts and practical applications.", s),
		fmt.Sprintf("Learn %s from scratch with hands-on projects and real-world examples.", s),
		fmt.Sprintf("Master %s with this complete guide designed for all skill levels.", s),
		fmt.Sprintf("Professional %s training with industry best practices and expert insights.", s),
		fmt.Sprintf("In-depth %s course with practical exercises and certification.", s),
	}
}

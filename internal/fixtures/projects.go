package fixtures

import (
	"github.com/angelmondragon/opusclip-demo/pkg/db/models"
	"github.com/angelmondragon/opusclip-demo/pkg/enums"
)

func projects() []models.Project {
	return []models.Project{
		{
			ID:          "project-1",
			Slug:        "lex-408",
			Title:       "Demo project: Lex #408",
			Description: "Interview with Lex Fridman",
			Thumbnail: models.ProjectThumbnail{
				Square:   "/images/thumbnail-square-1.png",
				Vertical: "/images/thumbnail-vertical-1.png",
			},
			VideoSrc:  "/videos/sample-1.mp4",
			Poster:    "/images/poster-1.png",
			Duration:  3600,
			Points:    1200,
			CreatedAt: day(2023, 5, 15),
			UpdatedAt: day(2023, 5, 15),
		},
		{
			ID:          "project-2",
			Slug:        "curry-drills",
			Title:       "Curry Drills 12 Threes",
			Description: "Basketball training session",
			Thumbnail: models.ProjectThumbnail{
				Square:   "/images/thumbnail-square-2.png",
				Vertical: "/images/thumbnail-vertical-2.png",
			},
			VideoSrc:  "/videos/sample-2.mp4",
			Poster:    "/images/poster-2.png",
			Duration:  1800,
			Points:    800,
			CreatedAt: day(2023, 6, 1),
			UpdatedAt: day(2023, 6, 1),
		},
		{
			ID:          "project-3",
			Slug:        "danny-duncan",
			Title:       "Interview with Danny Duncan",
			Description: "Skateboarding legend interview",
			Thumbnail: models.ProjectThumbnail{
				Square:   "/images/thumbnail-square-3.png",
				Vertical: "/images/thumbnail-vertical-3.png",
			},
			VideoSrc:  "/videos/sample-3.mp4",
			Poster:    "/images/poster-3.png",
			Duration:  2700,
			Points:    1000,
			CreatedAt: day(2023, 6, 10),
			UpdatedAt: day(2023, 6, 10),
		},
		{
			ID:          "project-4",
			Slug:        "learning-center",
			Title:       "Learning center",
			Description: "Educational content series",
			Thumbnail: models.ProjectThumbnail{
				Square:   "/images/thumbnail-square-4.png",
				Vertical: "/images/thumbnail-vertical-4.png",
			},
			VideoSrc:  "/videos/sample-4.mp4",
			Poster:    "/images/poster-4.png",
			Duration:  1200,
			Points:    600,
			CreatedAt: day(2023, 6, 15),
			UpdatedAt: day(2023, 6, 15),
		},
		{
			ID:          "project-5",
			Slug:        "tech-review",
			Title:       "Latest Tech Review",
			Description: "Gadget reviews and analysis",
			Thumbnail: models.ProjectThumbnail{
				Square:   "/images/thumbnail-square-5.png",
				Vertical: "/images/thumbnail-vertical-5.png",
			},
			VideoSrc:  "/videos/sample-5.mp4",
			Poster:    "/images/poster-5.png",
			Duration:  2100,
			Points:    900,
			CreatedAt: day(2023, 6, 18),
			UpdatedAt: day(2023, 6, 18),
		},
		{
			ID:          "project-6",
			Slug:        "cooking-tutorial",
			Title:       "Masterclass: Italian Cuisine",
			Description: "Learn to cook authentic Italian dishes",
			Thumbnail: models.ProjectThumbnail{
				Square:   "/images/thumbnail-square-6.png",
				Vertical: "/images/thumbnail-vertical-6.png",
			},
			VideoSrc:  "/videos/sample-6.mp4",
			Poster:    "/images/poster-6.png",
			Duration:  3000,
			Points:    1100,
			CreatedAt: day(2023, 6, 20),
			UpdatedAt: day(2023, 6, 20),
		},
	}
}

func clips() map[string][]models.Clip {
	return map[string][]models.Clip{
		"project-1": {
			{ID: "clip-1-1", ProjectID: "project-1", Title: "Introduction", Start: 0, End: 120},
			{ID: "clip-1-2", ProjectID: "project-1", Title: "AI and Consciousness", Start: 120, End: 600},
			{ID: "clip-1-3", ProjectID: "project-1", Title: "The Future of Robotics", Start: 600, End: 1200},
			{ID: "clip-1-4", ProjectID: "project-1", Title: "Neural Networks Explained", Start: 1200, End: 1800},
			{ID: "clip-1-5", ProjectID: "project-1", Title: "Ethics in AI", Start: 1800, End: 2400},
			{ID: "clip-1-6", ProjectID: "project-1", Title: "Closing Thoughts", Start: 2400, End: 3600},
		},
		"project-2": {
			{ID: "clip-2-1", ProjectID: "project-2", Title: "Warm-up Drills", Start: 0, End: 300},
			{ID: "clip-2-2", ProjectID: "project-2", Title: "Ball Handling", Start: 300, End: 600},
			{ID: "clip-2-3", ProjectID: "project-2", Title: "Shooting Form", Start: 600, End: 900},
			{ID: "clip-2-4", ProjectID: "project-2", Title: "Three-Point Practice", Start: 900, End: 1500},
			{ID: "clip-2-5", ProjectID: "project-2", Title: "Cool Down", Start: 1500, End: 1800},
		},
		"project-3": {
			{ID: "clip-3-1", ProjectID: "project-3", Title: "Early Life", Start: 0, End: 300},
			{ID: "clip-3-2", ProjectID: "project-3", Title: "Rise to Fame", Start: 300, End: 900},
			{ID: "clip-3-3", ProjectID: "project-3", Title: "Signature Tricks", Start: 900, End: 1500},
			{ID: "clip-3-4", ProjectID: "project-3", Title: "Life Philosophy", Start: 1500, End: 2100},
			{ID: "clip-3-5", ProjectID: "project-3", Title: "Future Goals", Start: 2100, End: 2700},
		},
		"project-4": {
			{ID: "clip-4-1", ProjectID: "project-4", Title: "Welcome", Start: 0, End: 120},
			{ID: "clip-4-2", ProjectID: "project-4", Title: "Basic Concepts", Start: 120, End: 420},
			{ID: "clip-4-3", ProjectID: "project-4", Title: "Hands-on Demo", Start: 420, End: 840},
			{ID: "clip-4-4", ProjectID: "project-4", Title: "Advanced Techniques", Start: 840, End: 1200},
		},
		"project-5": {
			{ID: "clip-5-1", ProjectID: "project-5", Title: "Product Overview", Start: 0, End: 300},
			{ID: "clip-5-2", ProjectID: "project-5", Title: "Unboxing", Start: 300, End: 600},
			{ID: "clip-5-3", ProjectID: "project-5", Title: "Performance Tests", Start: 600, End: 1200},
			{ID: "clip-5-4", ProjectID: "project-5", Title: "Pros and Cons", Start: 1200, End: 1650},
			{ID: "clip-5-5", ProjectID: "project-5", Title: "Final Verdict", Start: 1650, End: 2100},
		},
		"project-6": {
			{ID: "clip-6-1", ProjectID: "project-6", Title: "Ingredients", Start: 0, End: 300},
			{ID: "clip-6-2", ProjectID: "project-6", Title: "Pasta Making", Start: 300, End: 900},
			{ID: "clip-6-3", ProjectID: "project-6", Title: "Sauce Preparation", Start: 900, End: 1500},
			{ID: "clip-6-4", ProjectID: "project-6", Title: "Cooking Techniques", Start: 1500, End: 2400},
			{ID: "clip-6-5", ProjectID: "project-6", Title: "Plating and Serving", Start: 2400, End: 3000},
		},
	}
}

func captions() map[string][]models.CaptionBlock {
	return map[string][]models.CaptionBlock{
		"clip-1-1": {
			{ID: "caption-1-1-1", ClipID: "clip-1-1", Start: 0, End: 30, Text: "Welcome to another episode of the Lex Fridman Podcast"},
			{ID: "caption-1-1-2", ClipID: "clip-1-1", Start: 30, End: 60, Text: "Today we have a fascinating guest who has made significant contributions"},
			{ID: "caption-1-1-3", ClipID: "clip-1-1", Start: 60, End: 90, Text: "to the field of artificial intelligence and robotics"},
			{ID: "caption-1-1-4", ClipID: "clip-1-1", Start: 90, End: 120, Text: "Please welcome our guest for today"},
		},
		"clip-2-1": {
			{ID: "caption-2-1-1", ClipID: "clip-2-1", Start: 0, End: 60, Text: "Before we start with the intense drills, lets do a proper warm-up"},
			{ID: "caption-2-1-2", ClipID: "clip-2-1", Start: 60, End: 120, Text: "This will help prevent injuries and prepare your muscles"},
			{ID: "caption-2-1-3", ClipID: "clip-2-1", Start: 120, End: 180, Text: "We will do 5 minutes of light jogging followed by stretching"},
			{ID: "caption-2-1-4", ClipID: "clip-2-1", Start: 180, End: 240, Text: "Focus on your breathing and keeping a steady pace"},
			{ID: "caption-2-1-5", ClipID: "clip-2-1", Start: 240, End: 300, Text: "Remember, warming up is just as important as the main workout"},
		},
	}
}

func timeline() map[string][]models.TimelineSegment {
	return map[string][]models.TimelineSegment{
		"project-1": {
			{ID: "segment-1-1", ProjectID: "project-1", Start: 0, End: 120, Type: enums.SegmentTypeClip, ClipID: "clip-1-1"},
			{ID: "segment-1-2", ProjectID: "project-1", Start: 120, End: 600, Type: enums.SegmentTypeClip, ClipID: "clip-1-2"},
			{ID: "segment-1-3", ProjectID: "project-1", Start: 600, End: 1200, Type: enums.SegmentTypeClip, ClipID: "clip-1-3"},
		},
		"project-2": {
			{ID: "segment-2-1", ProjectID: "project-2", Start: 0, End: 300, Type: enums.SegmentTypeClip, ClipID: "clip-2-1"},
			{ID: "segment-2-2", ProjectID: "project-2", Start: 300, End: 600, Type: enums.SegmentTypeClip, ClipID: "clip-2-2"},
			{ID: "segment-2-3", ProjectID: "project-2", Start: 600, End: 900, Type: enums.SegmentTypeClip, ClipID: "clip-2-3"},
		},
	}
}

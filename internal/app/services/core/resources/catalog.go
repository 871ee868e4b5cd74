package resources

import "spectrumconnect-service/internal/app/models"

// catalog is the static learning library. ObjectKey names the downloadable file in object storage.
var catalog = []models.Resource{
	{
		ID:          1,
		Title:       "Understanding Sensory Processing Differences",
		Type:        models.ResourceTypeGuide,
		Format:      "PDF",
		Author:      "Dr. Sarah Johnson",
		Description: "A comprehensive guide to understanding and managing sensory processing differences in individuals with ASD.",
		Tags:        []string{"Sensory Processing", "Coping Strategies", "Daily Life"},
		Featured:    true,
		ObjectKey:   "guides/sensory-processing-differences.pdf",
	},
	{
		ID:          2,
		Title:       "Social Skills Development for Teens with ASD",
		Type:        models.ResourceTypeGuide,
		Format:      "PDF",
		Author:      "Michael Chen, MSW",
		Description: "Practical strategies and exercises for developing social skills in teenagers with autism spectrum disorder.",
		Tags:        []string{"Social Skills", "Teenagers", "Communication"},
		ObjectKey:   "guides/social-skills-teens.pdf",
	},
	{
		ID:          3,
		Title:       "Navigating the Workplace with ASD",
		Type:        models.ResourceTypeGuide,
		Format:      "PDF",
		Author:      "Emily Rodriguez, PhD",
		Description: "Career guidance and workplace accommodation strategies for adults with autism spectrum disorder.",
		Tags:        []string{"Employment", "Adults", "Accommodations"},
		Featured:    true,
		ObjectKey:   "guides/workplace-navigation.pdf",
	},
	{
		ID:          4,
		Title:       "Understanding Executive Functioning in ASD",
		Type:        models.ResourceTypeVideo,
		Format:      "Video",
		Author:      "Dr. James Wilson",
		Description: "An informative video explaining executive functioning challenges and strategies for individuals with ASD.",
		Tags:        []string{"Executive Function", "Cognitive Skills", "Organization"},
		ObjectKey:   "videos/executive-functioning.mp4",
	},
	{
		ID:          5,
		Title:       "Sensory-Friendly Home Environment Guide",
		Type:        models.ResourceTypeGuide,
		Format:      "PDF",
		Author:      "Aisha Patel, OT",
		Description: "How to create a sensory-friendly home environment that supports individuals with ASD.",
		Tags:        []string{"Sensory", "Home Environment", "Practical Tips"},
		ObjectKey:   "guides/sensory-friendly-home.pdf",
	},
	{
		ID:          6,
		Title:       "Communication Strategies for ASD",
		Type:        models.ResourceTypeVideo,
		Format:      "Video",
		Author:      "Dr. Robert Kim",
		Description: "Video tutorial on effective communication strategies for individuals with autism spectrum disorder.",
		Tags:        []string{"Communication", "Social Skills", "Relationships"},
		Featured:    true,
		ObjectKey:   "videos/communication-strategies.mp4",
	},
	{
		ID:          7,
		Title:       "ASD and Anxiety: Coping Techniques",
		Type:        models.ResourceTypeArticle,
		Format:      "Article",
		Author:      "Lisa Thompson, LMFT",
		Description: "Research-based article exploring the connection between ASD and anxiety, with practical coping techniques.",
		Tags:        []string{"Anxiety", "Mental Health", "Coping Strategies"},
		ObjectKey:   "articles/anxiety-coping-techniques.pdf",
	},
	{
		ID:          8,
		Title:       "Supporting ASD Children in School Settings",
		Type:        models.ResourceTypeGuide,
		Format:      "PDF",
		Author:      "Education Support Network",
		Description: "A guide for educators and parents on supporting children with ASD in educational environments.",
		Tags:        []string{"Education", "Children", "School Support"},
		ObjectKey:   "guides/school-support.pdf",
	},
}

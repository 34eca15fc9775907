package seed

var (
	AuthorCategories = []string{"Tech", "Lifestyle", "Business", "Science", "Health", "Travel"}
	PostCategories   = []string{"Tech", "Lifestyle", "Business", "Science", "Health", "Travel", "DIY", "Finance"}
	Countries        = []string{"US", "UK", "CA", "AU", "DE", "FR", "IN"}
	Segments         = []string{"free", "subscriber", "trial", "premium"}
	Tags             = []string{"SQL", "Optimization", "Wellness", "Morning", "Postgres", "Tips", "Startups", "AI", "Keto", "Yoga"}
)

package lexical

// SeedCorpus returns the representative role descriptions the default model
// is fitted on when no persisted model exists. The eight documents span the
// professions the scorer is most often used for, which keeps common
// resume/job vocabulary in scope for the vectorizer.
func SeedCorpus() []string {
	return []string{
		"software engineer python javascript react node.js aws full-stack development database design cloud architecture agile git ci/cd",
		"data scientist machine learning python r sql tensorflow scikit-learn statistical analysis data visualization business acumen",
		"product manager agile scrum user research product strategy cross-functional leadership analytical skills stakeholder management",
		"marketing manager digital marketing social media content strategy google analytics facebook ads seo budget management roi optimization",
		"sales representative b2b sales crm systems lead generation relationship building communication skills customer service negotiation",
		"ux ui designer user research wireframing prototyping figma sketch mobile design accessibility responsive design user testing",
		"devops engineer aws docker kubernetes terraform jenkins linux monitoring security automation ci/cd cloud architecture",
		"business analyst requirements gathering process improvement sql excel tableau data analysis stakeholder management communication skills",
	}
}

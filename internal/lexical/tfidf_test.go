package lexical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fitSeedModel(t *testing.T) *Model {
	t.Helper()
	model, err := Fit(SeedCorpus(), DefaultParams())
	require.NoError(t, err)
	return model
}

func TestFit_EmptyCorpus(t *testing.T) {
	_, err := Fit(nil, DefaultParams())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty corpus")
}

func TestFit_BuildsVocabularyWithBigrams(t *testing.T) {
	model := fitSeedModel(t)

	require.NotZero(t, model.VocabularySize())
	assert.Len(t, model.IDF, model.VocabularySize())
	assert.Equal(t, len(SeedCorpus()), model.CorpusSize)

	// Unigrams and bigrams both present
	assert.Contains(t, model.Vocabulary, "python")
	assert.Contains(t, model.Vocabulary, "machine learning")
}

func TestFit_RemovesStopwords(t *testing.T) {
	model, err := Fit([]string{
		"the quick engineer and the slow architect",
		"an engineer with the architect",
	}, DefaultParams())
	require.NoError(t, err)

	assert.NotContains(t, model.Vocabulary, "the")
	assert.NotContains(t, model.Vocabulary, "and")
	assert.Contains(t, model.Vocabulary, "engineer")
}

func TestFit_RespectsMaxFeatures(t *testing.T) {
	params := DefaultParams()
	params.MaxFeatures = 5

	model, err := Fit(SeedCorpus(), params)
	require.NoError(t, err)
	assert.Equal(t, 5, model.VocabularySize())
}

func TestFit_MaxDocRatioDropsUbiquitousTerms(t *testing.T) {
	params := DefaultParams()
	params.MaxDocRatio = 0.5

	// "python" appears in every document, "django" in one
	model, err := Fit([]string{
		"python django backend",
		"python frontend react",
		"python infrastructure terraform",
	}, params)
	require.NoError(t, err)

	assert.NotContains(t, model.Vocabulary, "python")
	assert.Contains(t, model.Vocabulary, "django")
}

func TestFit_Deterministic(t *testing.T) {
	first := fitSeedModel(t)
	second := fitSeedModel(t)

	assert.Equal(t, first.Vocabulary, second.Vocabulary)
	assert.Equal(t, first.IDF, second.IDF)
}

func TestSimilarity_Symmetric(t *testing.T) {
	model := fitSeedModel(t)

	a := "python developer with django experience"
	b := "looking for python and django engineer with aws skills"

	assert.InDelta(t, model.Similarity(a, b), model.Similarity(b, a), 1e-12)
}

func TestSimilarity_IdenticalText(t *testing.T) {
	model := fitSeedModel(t)

	text := "software engineer python aws docker kubernetes"
	assert.InDelta(t, 1.0, model.Similarity(text, text), 1e-9)
}

func TestSimilarity_Range(t *testing.T) {
	model := fitSeedModel(t)

	pairs := [][2]string{
		{"python developer", "python engineer"},
		{"marketing manager seo", "devops engineer kubernetes"},
		{"data scientist", "data scientist machine learning"},
	}
	for _, pair := range pairs {
		sim := model.Similarity(pair[0], pair[1])
		assert.GreaterOrEqual(t, sim, 0.0)
		assert.LessOrEqual(t, sim, 1.0)
	}
}

func TestSimilarity_EmptyInput(t *testing.T) {
	model := fitSeedModel(t)

	assert.Zero(t, model.Similarity("", "python developer"))
	assert.Zero(t, model.Similarity("python developer", ""))
	assert.Zero(t, model.Similarity("", ""))
	assert.Zero(t, model.Similarity("!!!", "python developer"))
}

func TestSimilarity_OutOfVocabularyOnly(t *testing.T) {
	model := fitSeedModel(t)

	// Terms absent from the seed corpus contribute zero weight
	assert.Zero(t, model.Similarity("xylophone quokka", "xylophone quokka"))
}

func TestSimilarity_RelatedScoresHigherThanUnrelated(t *testing.T) {
	model := fitSeedModel(t)

	job := "python machine learning data analysis sql"
	related := "data scientist python sql statistical analysis"
	unrelated := "marketing social media seo facebook ads"

	assert.Greater(t, model.Similarity(related, job), model.Similarity(unrelated, job))
}

func TestVectorize_L2Normalized(t *testing.T) {
	model := fitSeedModel(t)

	vec := model.Vectorize("python developer aws cloud architecture")
	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	assert.InDelta(t, 1.0, norm, 1e-9)
}

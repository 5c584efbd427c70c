package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotAvailableSentenceIsFixed(t *testing.T) {
	assert.Equal(t, "This information is not available in Sharath's resume.", NotAvailableSentence)

	for _, subject := range []string{"Sharath", "Ada"} {
		prompt := BuildPrompt(subject, "Experience: Engineer", "Is he married?")
		assert.Contains(t, prompt, `"This information is not available in Sharath's resume."`, subject)
		assert.Contains(t, prompt, "You are an AI assistant representing "+subject+".")
	}
}

func TestBuildPromptOrderAndContent(t *testing.T) {
	tests := []struct {
		name     string
		resume   string
		question string
	}{
		{"plain", "Experience: Engineer at Acme (2021-present)", "Where does he work?"},
		{"multiline resume", "Education\nB.Tech, 2020\n\nSkills\nGo, SQL", "What did he study?"},
		{"question repeats resume text", "Go, SQL", "Does he know Go, SQL?"},
		{"unicode", "Résumé — naïve café", "¿Dónde trabaja?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := BuildPrompt("Sharath", tt.resume, tt.question)

			roleAt := strings.Index(prompt, "You are an AI assistant representing Sharath.")
			policyAt := strings.Index(prompt, "This information is not available in Sharath's resume.")
			resumeAt := strings.Index(prompt, "Resume:\n"+tt.resume)
			questionAt := strings.LastIndex(prompt, "Question:\n"+tt.question)

			require.GreaterOrEqual(t, roleAt, 0, "role instruction missing")
			require.Greater(t, policyAt, roleAt, "policy must follow role")
			require.Greater(t, resumeAt, policyAt, "resume must follow policy")
			require.Greater(t, questionAt, resumeAt, "question must follow resume")
			assert.Contains(t, prompt, "infer logically based on the resume content")
		})
	}
}

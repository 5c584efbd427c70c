package usecase

import "fmt"

// NotAvailableSentence is the exact reply for questions the résumé cannot answer.
// It stays fixed whatever SUBJECT_NAME is set to.
const NotAvailableSentence = "This information is not available in Sharath's resume."

// BuildPrompt lays out, in order: role, answering policy, résumé text, question.
// Résumé and question are inserted verbatim.
func BuildPrompt(subject, resume, question string) string {
	return fmt.Sprintf(`You are an AI assistant representing %s.

Answer using the resume information below.
If the question requires interpretation (like employment status),
infer logically based on the resume content.
If information is not available, say it clearly.

If the answer is not in the resume, say:
"%s"

Resume:
%s

Question:
%s
`, subject, NotAvailableSentence, resume, question)
}

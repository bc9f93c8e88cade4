// Package rewrite builds the constrained rewrite instruction and requests the
// rewritten competencies block from the model.
package rewrite

import (
	"context"
	"fmt"

	"resume-optimizer/internal/llm"
)

const maxLines = 9

const promptTemplate = `Rewrite the core competencies section of a resume so it better matches the job description below.
Rules:
1. Preserve objective facts: do not change or add technology stacks, years of experience, or other factual claims.
2. Never invent skills or experience that are not listed, even if the job description asks for them.
3. Keep the original format: one capability per line, with no prefix labels such as "Skill:".
4. Technical phrasing may be mildly strengthened, but capabilities that do not exist must not be fabricated.
5. Answer in English with at most %d lines. Follow this limit strictly.

Job description:
%s

Original core competencies:
%s

Rewritten core competencies (keep the original format, list each capability directly):`

// BuildPrompt embeds the job description and the located section into a
// single instruction. Both inputs are passed through verbatim.
func BuildPrompt(jobDescription, sectionText string) string {
	return fmt.Sprintf(promptTemplate, maxLines, jobDescription, sectionText)
}

// Requester sends rewrite instructions to a text-generation client.
type Requester struct {
	LLM llm.Client
}

// Rewrite asks the model for a rewritten section and returns its trimmed
// text. Failures come back as *llm.UpstreamError from the client; they are
// not retried and no fallback text is produced.
func (r Requester) Rewrite(ctx context.Context, jobDescription, sectionText string) (string, error) {
	return r.LLM.Complete(ctx, BuildPrompt(jobDescription, sectionText))
}

// Package gemini implements résumé tailoring and token counting using
// Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/jobtailor"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// requestsPerMinute paces API calls to stay inside free-tier quotas.
const requestsPerMinute = 20

// Ensure Tailorer implements jobtailor.Tailorer at compile time.
var _ jobtailor.Tailorer = (*Tailorer)(nil)

// Tailorer implements jobtailor.Tailorer using Google Gemini.
type Tailorer struct {
	client  *genai.Client
	limiter *rate.Limiter
}

// NewTailorer creates a new Tailorer.
func NewTailorer(client *genai.Client) *Tailorer {
	return &Tailorer{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(requestsPerMinute)/60, 1),
	}
}

// TailorResume rewrites the résumé for the given job posting.
func (t *Tailorer) TailorResume(ctx context.Context, resume *jobtailor.Resume, job *jobtailor.JobPosting) (string, error) {
	if resume == nil {
		return "", jobtailor.Errorf(jobtailor.EINVALID, "resume required")
	}
	if job == nil {
		return "", jobtailor.Errorf(jobtailor.EINVALID, "job required")
	}
	if err := validateDescription(job); err != nil {
		return "", err
	}

	if err := t.limiter.Wait(ctx); err != nil {
		return "", err
	}

	prompt := BuildTailorPrompt(resume, job)
	config := BuildTailorConfig()

	result, err := t.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", jobtailor.Errorf(jobtailor.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// ExtractKeywords returns the most important skills and qualifications
// mentioned in a job description.
func (t *Tailorer) ExtractKeywords(ctx context.Context, description string) ([]string, error) {
	if description == "" {
		return nil, jobtailor.Errorf(jobtailor.EINVALID, "description required")
	}

	if err := t.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	prompt := BuildKeywordPrompt(description)
	config := BuildKeywordConfig()

	result, err := t.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, jobtailor.Errorf(jobtailor.EINTERNAL, "gemini returned nil result")
	}

	return ParseKeywords(result.Text()), nil
}

// validateDescription rejects jobs whose description is a leftover URL or
// too short to tailor against. Such records mean scraping failed upstream.
func validateDescription(job *jobtailor.JobPosting) error {
	description := strings.TrimSpace(job.Description)
	if strings.HasPrefix(description, "http") {
		return jobtailor.Errorf(jobtailor.EINVALID,
			"description for %q at %q looks like a URL, not job content", job.Title, job.Company)
	}
	if len(description) < jobtailor.MinDescriptionLength {
		return jobtailor.Errorf(jobtailor.EINVALID,
			"description for %q at %q is too short (%d chars) to tailor against", job.Title, job.Company, len(description))
	}
	return nil
}

// tailorSystemInstruction pins the output format. Downstream renderers
// identify sections by these exact header names, so the model must emit
// them verbatim.
const tailorSystemInstruction = `You are an expert resume writer specializing in ATS-optimized resumes. Your output will be parsed by a program that identifies sections by their exact header names, so you MUST use these exact section headers (on their own line, followed by nothing):

  SUMMARY
  EXPERIENCE
  EDUCATION
  TECHNICAL SKILLS
  PROJECTS
  CERTIFICATIONS

Formatting rules:
1. NEVER fabricate experience, skills, or qualifications.
2. Contact line format: Name on first line, then one line with: phone | email | linkedin.com/in/handle | github.com/handle
3. Experience entries MUST follow this exact pattern (one entry per job):
   Company Name | Job Title | Month Year - Month Year | City, State
   - Bullet point achievement (start with strong action verb, quantify impact)
4. Skills MUST be grouped with a category label:
   Languages: Go, Python, SQL
5. Keep to 1 page if under 5 years experience, 2 pages otherwise.
6. Do NOT add any markdown, asterisks for bold, or extra symbols.`

// BuildTailorConfig returns the GenerateContentConfig for tailoring calls.
func BuildTailorConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: tailorSystemInstruction}},
		},
		Temperature: &temp,
	}
}

// BuildTailorPrompt builds the user prompt containing the job details and
// the candidate's formatted résumé.
func BuildTailorPrompt(resume *jobtailor.Resume, job *jobtailor.JobPosting) string {
	var sb strings.Builder
	sb.WriteString("Tailor the resume below for the following job. Output a complete, clean resume.\n\n")
	sb.WriteString("JOB DETAILS:\n")
	fmt.Fprintf(&sb, "Title: %s\n", job.Title)
	fmt.Fprintf(&sb, "Company: %s\n\n", job.Company)
	sb.WriteString("JOB DESCRIPTION:\n")
	sb.WriteString(job.Description)
	sb.WriteString("\n\nORIGINAL RESUME:\n")
	sb.WriteString(jobtailor.FormatResume(resume))
	sb.WriteString("\n\nOUTPUT INSTRUCTIONS:\n")
	sb.WriteString("Produce the tailored resume using ONLY the exact section headers listed in your instructions. ")
	sb.WriteString("Do not include any commentary, explanation, or markdown formatting outside the resume itself. ")
	sb.WriteString("Begin the output with the candidate's name on the first line.")
	return sb.String()
}

// BuildKeywordConfig returns the GenerateContentConfig for keyword
// extraction calls.
func BuildKeywordConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "Extract the most important technical skills, soft skills, and qualifications from job descriptions. Return only a comma-separated list.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildKeywordPrompt builds the user prompt for keyword extraction.
func BuildKeywordPrompt(description string) string {
	return fmt.Sprintf("Extract the top 15-20 most important keywords from this job description:\n\n%s", description)
}

// ParseKeywords splits a comma-separated model response into trimmed,
// non-empty keywords.
func ParseKeywords(text string) []string {
	var keywords []string
	for _, part := range strings.Split(text, ",") {
		if part = strings.TrimSpace(part); part != "" {
			keywords = append(keywords, part)
		}
	}
	return keywords
}

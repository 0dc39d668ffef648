package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/campusmatch/backend/config"
	"github.com/campusmatch/backend/errs"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// RankRequest carries everything the ranker needs about one project and
// its applications. The caller assembles it; the ranker only judges.
type RankRequest struct {
	ProjectID       uuid.UUID            `json:"project_id"`
	ProjectTitle    string               `json:"project_title"`
	RequiredSkills  []string             `json:"required_skills"`
	PreferredSkills []string             `json:"preferred_skills"`
	TeamSizeMin     int                  `json:"team_size_min"`
	TeamSizeMax     int                  `json:"team_size_max"`
	Applications    []ApplicationSummary `json:"applications"`
}

// ApplicationSummary is the per-application slice of the ranking payload.
type ApplicationSummary struct {
	ApplicationID   uuid.UUID `json:"application_id"`
	ApplicantType   string    `json:"applicant_type"`
	ApplicantName   string    `json:"applicant_name"`
	TeamSize        int       `json:"team_size"`
	Skills          []string  `json:"skills"`
	MatchedRequired []string  `json:"matched_required"`
	MissingRequired []string  `json:"missing_required"`
	Responses       string    `json:"responses"`
}

// RankedApplication is one entry of the model's ranking.
type RankedApplication struct {
	ApplicationID    uuid.UUID `json:"application_id"`
	SuitabilityScore int       `json:"suitability_score"`
	Strengths        []string  `json:"strengths"`
	Concerns         []string  `json:"concerns"`
}

// RankResult is the structured ranking returned to the admin.
type RankResult struct {
	BestApplicationID uuid.UUID           `json:"best_application_id"`
	Summary           string              `json:"summary"`
	Ranking           []RankedApplication `json:"ranking"`
}

// ApplicationRanker ranks a project's applications. The production
// implementation delegates judgment to a language model; tests inject a
// fake so the rest of the service stays deterministic.
type ApplicationRanker interface {
	RankApplications(ctx context.Context, req RankRequest) (*RankResult, error)
}

// LLMRanker implements ApplicationRanker with a single prompt/response
// round trip against an OpenAI-compatible model. No retry, no caching, no
// fallback ranking: a failed round trip surfaces as an error.
type LLMRanker struct {
	model  llms.Model
	logger zerolog.Logger
}

// NewLLMRanker builds a ranker from environment configuration.
// OPENAI_API_KEY is required; RANKER_MODEL overrides the default model.
func NewLLMRanker() (*LLMRanker, error) {
	cfg := config.New()
	modelName := config.GetString(cfg, "RANKER_MODEL", "gpt-4o-mini")

	model, err := openai.New(openai.WithModel(modelName))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ranking model: %w", err)
	}

	return &LLMRanker{
		model:  model,
		logger: log.With().Str("serviceName", "llmRanker").Logger(),
	}, nil
}

func (r *LLMRanker) RankApplications(ctx context.Context, req RankRequest) (*RankResult, error) {
	if len(req.Applications) == 0 {
		return nil, errs.NewBadRequestError("no applications to rank")
	}

	prompt, err := buildRankingPrompt(req)
	if err != nil {
		return nil, errs.NewRankerError(err)
	}

	r.logger.Info().
		Str("projectID", req.ProjectID.String()).
		Int("applications", len(req.Applications)).
		Msg("Requesting application ranking")

	output, err := llms.GenerateFromSinglePrompt(ctx, r.model, prompt,
		llms.WithTemperature(0.1),
		llms.WithJSONMode(),
	)
	if err != nil {
		return nil, errs.NewRankerError(err)
	}

	return ParseRankResult(output, req)
}

// buildRankingPrompt renders the request as one instruction block plus the
// payload as JSON. Keeping the payload machine-readable makes the model's
// job easier than prose would.
func buildRankingPrompt(req RankRequest) (string, error) {
	payload, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal ranking payload: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are reviewing team applications for an academic project. ")
	b.WriteString("Rank every application by how well the applicant's skills and responses fit the project's required and preferred skills, ")
	b.WriteString("taking team size fit into account.\n\n")
	b.WriteString("Respond with strict JSON only, in this shape:\n")
	b.WriteString(`{"best_application_id": "<uuid>", "summary": "<one paragraph>", "ranking": [{"application_id": "<uuid>", "suitability_score": 0-100, "strengths": ["..."], "concerns": ["..."]}]}`)
	b.WriteString("\n\nEvery submitted application must appear exactly once in the ranking. Here is the project and its applications:\n\n")
	b.Write(payload)
	return b.String(), nil
}

// ParseRankResult decodes and validates the model's JSON. Markdown code
// fences are stripped; unknown or missing application IDs and out-of-range
// scores are rejected rather than repaired.
func ParseRankResult(output string, req RankRequest) (*RankResult, error) {
	cleaned := cleanJSONBlock(output)

	var result RankResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, errs.NewMalformedRankingError("Ranking response is not valid JSON", err)
	}

	if len(result.Ranking) == 0 {
		return nil, errs.NewMalformedRankingError("Ranking response contains no entries", nil)
	}

	submitted := make(map[uuid.UUID]bool, len(req.Applications))
	for _, app := range req.Applications {
		submitted[app.ApplicationID] = true
	}

	ranked := make(map[uuid.UUID]bool, len(result.Ranking))
	for _, entry := range result.Ranking {
		if !submitted[entry.ApplicationID] {
			return nil, errs.NewMalformedRankingError(
				fmt.Sprintf("Ranking refers to unknown application %s", entry.ApplicationID), nil)
		}
		if ranked[entry.ApplicationID] {
			return nil, errs.NewMalformedRankingError(
				fmt.Sprintf("Application %s appears twice in the ranking", entry.ApplicationID), nil)
		}
		ranked[entry.ApplicationID] = true

		if entry.SuitabilityScore < 0 || entry.SuitabilityScore > 100 {
			return nil, errs.NewMalformedRankingError(
				fmt.Sprintf("Suitability score %d out of range for application %s",
					entry.SuitabilityScore, entry.ApplicationID), nil)
		}
	}

	if !submitted[result.BestApplicationID] {
		return nil, errs.NewMalformedRankingError("Best application ID is not a submitted application", nil)
	}

	return &result, nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

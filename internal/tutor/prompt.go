package tutor

import (
	"fmt"
	"strings"

	"github.com/LinosCo/trainbot/internal/botconfig"
	"github.com/LinosCo/trainbot/internal/evaluator"
	"github.com/LinosCo/trainbot/internal/supervisor"
)

const tutorSystemPrompt = `You are a professional corporate trainer delivering a structured training path. You explain one topic at a time, check understanding, and give honest, specific feedback. Stay on the topic you are given.`

const gradingSystemPrompt = `You are grading a trainee's free-text answer against a topic's learning objectives. Be fair but strict: credit only what the answer actually demonstrates. Never invent gaps that the objectives do not cover.`

// audienceHints appends language and education level lines when the bot
// configures them.
func audienceHints(b *strings.Builder, bot *botconfig.TrainingBot) {
	if bot.Language != "" {
		fmt.Fprintf(b, "Respond in: %s\n", bot.Language)
	}
	if bot.EducationLevel != "" {
		fmt.Fprintf(b, "Audience education level: %s\n", bot.EducationLevel)
	}
}

func topicHeader(b *strings.Builder, topic botconfig.Topic) {
	fmt.Fprintf(b, "Topic: %s\n", topic.Label)
	if topic.Description != "" {
		fmt.Fprintf(b, "Description: %s\n", topic.Description)
	}
	b.WriteString("Learning objectives:\n")
	for _, o := range topic.Objectives {
		fmt.Fprintf(b, "- %s\n", o)
	}
}

func buildExplainUserMessage(input ExplainInput) string {
	var b strings.Builder

	topicHeader(&b, input.Topic)
	fmt.Fprintf(&b, "Learner competence: %s\n", input.Competence)
	audienceHints(&b, input.Bot)

	if len(input.Gaps) > 0 {
		b.WriteString("\nGaps from the previous attempt:\n")
		for _, g := range input.Gaps {
			fmt.Fprintf(&b, "- %s\n", g)
		}
	}

	b.WriteString("\nInstructions:\n")
	switch input.AdaptationDepth {
	case 0:
		b.WriteString(`Explain this topic so the learner can meet every objective. Use short paragraphs and concrete workplace examples. Keep it under 300 words.`)
	case 1:
		b.WriteString(`The learner did not pass this topic on the first attempt. Explain it again more simply: shorter sentences, one idea per paragraph, and an everyday example for each objective. Directly address the gaps listed above. Keep it under 250 words.`)
	default:
		b.WriteString(`This is the learner's last attempt at this topic. Explain it in the plainest possible terms, as to someone with no background at all. Use one simple analogy per objective and close the gaps listed above one by one. Keep it under 250 words.`)
	}

	switch input.Competence {
	case supervisor.CompetenceBeginner:
		b.WriteString("\nAvoid jargon entirely; define every term you must use.")
	case supervisor.CompetenceAdvanced:
		b.WriteString("\nThe learner writes detailed answers; be precise and skip the basics they already show.")
	}

	return b.String()
}

func buildCheckUserMessage(input CheckInput) string {
	var b strings.Builder

	topicHeader(&b, input.Topic)
	audienceHints(&b, input.Bot)

	b.WriteString("\nExplanation just shown to the learner:\n")
	b.WriteString(input.Explanation)

	b.WriteString(`

Instructions:
Ask one open question that checks whether the learner understood the explanation. The question must be answerable in 2-4 sentences using only the explanation above, and must target the learning objectives, not trivia.`)

	return b.String()
}

func buildQuizUserMessage(bot *botconfig.TrainingBot, topic botconfig.Topic, count int) string {
	var b strings.Builder

	topicHeader(&b, topic)
	audienceHints(&b, bot)

	fmt.Fprintf(&b, `
Instructions:
Write exactly %d closed questions testing the objectives above. Mix multiple_choice and true_false where it makes sense. Multiple choice questions need 3-4 plausible options with exactly one correct. True/false questions need exactly the options ["True", "False"]. Set correct_index to the zero-based position of the right option.`, count)

	return b.String()
}

func buildGradingUserMessage(input evaluator.OpenAnswerInput) string {
	var b strings.Builder

	b.WriteString("Learning objectives:\n")
	for _, o := range input.Objectives {
		fmt.Fprintf(&b, "- %s\n", o)
	}
	fmt.Fprintf(&b, "\nQuestion asked:\n%s\n", input.Question)
	fmt.Fprintf(&b, "\nTrainee's answer:\n%s\n", input.Answer)
	fmt.Fprintf(&b, "\nTrainee competence: %s\n", input.Competence)

	b.WriteString(`
Instructions:
Score the answer 0-100 for how well it covers the objectives the question targets. List each concrete gap as a short phrase. Write 1-3 sentences of feedback addressed to the trainee, naming what was right before what was missing.`)

	return b.String()
}

func buildFinalUserMessage(input FinalInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Training path: %s\n", input.Bot.Name)
	audienceHints(&b, input.Bot)
	b.WriteString("\nTopic results:\n")
	for _, r := range input.Results {
		fmt.Fprintf(&b, "- %s: %s, score %d", r.TopicLabel, r.Status, r.Score)
		if r.Retries > 0 {
			fmt.Fprintf(&b, " (%d retries)", r.Retries)
		}
		b.WriteString("\n")
		for _, g := range r.Gaps {
			fmt.Fprintf(&b, "    gap: %s\n", g)
		}
	}
	outcome := "FAILED"
	if input.Passed {
		outcome = "PASSED"
	}
	fmt.Fprintf(&b, "\nOverall: %d (%s)\n", input.OverallScore, outcome)

	b.WriteString(`
Instructions:
Write closing feedback for the trainee: acknowledge what went well, name the weak topics and the most important remaining gaps, and suggest one concrete next step. 3-6 sentences, direct and encouraging, no score recitation.`)

	return b.String()
}

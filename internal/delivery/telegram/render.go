package telegram

import (
	"fmt"
	"strings"
	"time"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
	"github.com/aliskhannn/lexiquest/internal/service"
)

// renderItem renders the prompt for the current item of the session.
func renderItem(session *entities.Session, itemIndex int) string {
	item := session.Items[itemIndex]

	var sb strings.Builder
	sb.WriteString(italic(fmt.Sprintf("Word %d of %d", itemIndex+1, len(session.Items))))
	sb.WriteString("\n\n")

	switch item.Mode {
	case entities.ModeListening:
		sb.WriteString(md("🎧 Which word sounds like this?"))
		sb.WriteString("\n\n")
		sb.WriteString(bold(listeningPrompt(item.Word)))
	case entities.ModeWriting:
		sb.WriteString(md("✍️ Type the translation of"))
		sb.WriteString("\n\n")
		sb.WriteString(bold(item.Word.Term))
		if item.Word.Pronunciation != "" {
			sb.WriteString(" " + md("["+item.Word.Pronunciation+"]"))
		}
	default:
		sb.WriteString(md("🔤 Pick the translation of"))
		sb.WriteString("\n\n")
		sb.WriteString(bold(item.Word.Term))
	}

	return sb.String()
}

// listeningPrompt shows the pronunciation guide, or the term when the word has none.
func listeningPrompt(w entities.Word) string {
	if w.Pronunciation != "" {
		return "🔊 " + w.Pronunciation
	}
	return "🔊 " + w.Term
}

// renderFeedback renders the verdict for an answered item.
func renderFeedback(prompt string, res *service.AnswerResult) string {
	var sb strings.Builder
	sb.WriteString(prompt)
	sb.WriteString("\n\n")

	if res.Correct {
		sb.WriteString(md("✅ Correct! "))
	} else {
		sb.WriteString(md("❌ Not quite. The answer is "))
		sb.WriteString(bold(res.CorrectAnswer))
		sb.WriteString(md(". "))
	}

	if res.Saved {
		sb.WriteString(md("Next review in " + formatDays(res.State.IntervalDays) + "."))
	} else {
		sb.WriteString("\n")
		sb.WriteString(md(msgProgressNotSaved))
	}

	return sb.String()
}

// renderResult renders the summary of a finished session.
func renderResult(session *entities.Session) string {
	total := session.Correct + session.Incorrect

	var sb strings.Builder
	if session.Seed != "" {
		sb.WriteString(bold("📅 Daily challenge complete!"))
	} else {
		sb.WriteString(bold("🏁 Session complete!"))
	}
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("✅ Correct: %d / %d (%.0f%%)", session.Correct, total, session.Score())))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("❌ Missed: %d", session.Incorrect)))

	if session.CompletedAt != nil {
		elapsed := session.CompletedAt.Sub(session.StartedAt).Round(time.Second)
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("⏱ Time: %s", elapsed)))
	}

	if session.Incorrect > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(md("Missed words will come back tomorrow."))
	}

	return sb.String()
}

// renderProgress renders the progress summary.
func renderProgress(summary *service.ProgressSummary, settings *entities.LearnerSettings, loc *time.Location) string {
	var sb strings.Builder
	sb.WriteString(bold("📊 Your progress"))
	sb.WriteString("\n\n")

	if summary.Total == 0 {
		sb.WriteString(md("No words reviewed yet. Start with /practice!"))
		return sb.String()
	}

	sb.WriteString(md(buildProgressBar(summary.Mature, summary.Total, 20)))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("📚 Words seen: %d", summary.Total)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("🌱 Learning: %d", summary.Learning)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("🌳 Mature: %d", summary.Mature)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("⚠️ Struggling: %d", summary.Struggling)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("⏰ Due now: %d", summary.Due)))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("🎯 Accuracy: %.1f%%", summary.Accuracy)))

	if summary.LastReviewedAt != nil {
		sb.WriteString("\n")
		sb.WriteString(md("🕐 Last review: " + summary.LastReviewedAt.In(loc).Format("Jan 2, 15:04")))
	}

	if settings != nil {
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("📝 Session size: %d", settings.SessionSize)))
	}

	return sb.String()
}

// renderSettings renders the settings screen.
func renderSettings(settings *entities.LearnerSettings) string {
	return fmt.Sprintf(
		"%s\n\n%s\n%s\n%s",
		bold("⚙️ Settings"),
		md(fmt.Sprintf("📝 Session size: %d", settings.SessionSize)),
		md("🎲 Mode: "+formatMode(settings.Mode)),
		md("⏰ Reminders: "+formatBool(settings.ReminderEnabled)),
	)
}

func renderReminder(dueCount int) string {
	word := "words are"
	if dueCount == 1 {
		word = "word is"
	}
	return fmt.Sprintf(
		"%s\n\n%s",
		bold("⏰ Time to practice"),
		md(fmt.Sprintf("%d %s waiting for review. A short session keeps them fresh.", dueCount, word)),
	)
}

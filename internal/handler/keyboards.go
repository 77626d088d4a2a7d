package handler

import (
	"strconv"
	"time"

	"emaster/internal/domain"
	"emaster/internal/quiz"

	tele "gopkg.in/telebot.v3"
)

func sectionMarkup(st *chatState) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	var rows []tele.Row

	if st.Section == domain.SectionScramble {
		all := "All"
		if st.Category == "" {
			all = "✅ All"
		}
		rows = append(rows, markup.Row(markup.Data(all, cbCategory, "ALL")))

		var cats tele.Row
		for _, c := range domain.ScrambleCategories {
			label := string(c)
			if st.Category == c {
				label = "✅ " + label
			}
			cats = append(cats, markup.Data(label, cbCategory, c.Code()))
		}
		rows = append(rows, cats)
	}

	rangeRow := markup.Row(markup.Data("🎯 Set ranges", cbRanges))
	if len(st.Ranges) > 0 {
		rangeRow = append(rangeRow, markup.Data("✖️ Clear ranges", cbRangesClear))
	}

	rows = append(rows,
		rangeRow,
		markup.Row(markup.Data("📝 Start quiz", cbQuiz)),
		markup.Row(
			markup.Data("🎲 Quick random", cbRandom),
			markup.Data("🔁 Review mistakes", cbReview),
		),
		markup.Row(
			markup.Data("📋 Word list", cbWords, "1"),
			markup.Data("♻️ Reset stats", cbReset),
		),
		markup.Row(btnMainMenu),
	)

	markup.Inline(rows...)
	return markup
}

func backToSectionButton(markup *tele.ReplyMarkup, section domain.Section) tele.Btn {
	return markup.Data("◀️ Back", cbSection, string(section))
}

func quizTypeMarkup(section domain.Section) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	var rows []tele.Row
	for _, t := range quizTypesFor(section) {
		rows = append(rows, markup.Row(markup.Data(quizTypeLabel(t), cbType, string(t))))
	}
	rows = append(rows, markup.Row(backToSectionButton(markup, section)))
	markup.Inline(rows...)
	return markup
}

func orderMarkup(section domain.Section) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	var rows []tele.Row
	for _, o := range domain.SortOrders {
		rows = append(rows, markup.Row(markup.Data(orderLabel(o), cbOrder, string(o))))
	}
	rows = append(rows, markup.Row(backToSectionButton(markup, section)))
	markup.Inline(rows...)
	return markup
}

// questionMarkup shows one button per option, two per row. Buttons carry
// "question:option" so a tap on an older question's keyboard can be told apart.
func questionMarkup(s quiz.Session, hintShown bool) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	var rows []tele.Row

	options := s.Options()
	for i := 0; i < len(options); i += 2 {
		row := markup.Row(markup.Data(options[i], cbAnswer, answerPayload(s.Index(), i)))
		if i+1 < len(options) {
			row = append(row, markup.Data(options[i+1], cbAnswer, answerPayload(s.Index(), i+1)))
		}
		rows = append(rows, row)
	}

	if s.Config().Type.IsGapFill() && !hintShown {
		rows = append(rows, markup.Row(markup.Data("💡 Show Japanese", cbHint, strconv.Itoa(s.Index()))))
	}

	rows = append(rows, markup.Row(btnEnd))
	markup.Inline(rows...)
	return markup
}

func resultMarkup(s quiz.Session) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	next := btnNext
	if s.Index()+1 >= s.Total() {
		next = btnFinish
	}
	markup.Inline(markup.Row(next, btnEnd))
	return markup
}

func summaryMarkup(section domain.Section) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(sectionTitle(section), cbSection, string(section))),
		markup.Row(btnHistory, btnMainMenu),
	)
	return markup
}

func confirmMarkup(yesAction, noAction, noPayload string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	no := markup.Data("❌ No", noAction)
	if noPayload != "" {
		no = markup.Data("❌ No", noAction, noPayload)
	}
	markup.Inline(markup.Row(markup.Data("✅ Yes", yesAction), no))
	return markup
}

func historyMarkup(records []domain.HistoryRecord, page, totalPages int, now time.Time) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	var rows []tele.Row

	for _, r := range records {
		rows = append(rows, markup.Row(markup.Data(historyLabel(r, now), cbHistoryDetail, r.ID)))
	}

	if totalPages > 1 {
		var nav tele.Row
		if page > 1 {
			nav = append(nav, markup.Data("⬅️", cbHistory, strconv.Itoa(page-1)))
		}
		if page < totalPages {
			nav = append(nav, markup.Data("➡️", cbHistory, strconv.Itoa(page+1)))
		}
		if len(nav) > 0 {
			rows = append(rows, nav)
		}
	}

	if len(records) > 0 {
		rows = append(rows, markup.Row(
			markup.Data("📄 Export CSV", cbHistoryCSV),
			markup.Data("🗑 Clear", cbHistoryClear),
		))
	}
	rows = append(rows, markup.Row(btnMainMenu))

	markup.Inline(rows...)
	return markup
}

func historyDetailMarkup(id string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data("📄 Export CSV", cbHistoryDetailCSV, id)),
		markup.Row(markup.Data("◀️ Back", cbHistory, "1"), btnMainMenu),
	)
	return markup
}

func wordListMarkup(st *chatState, page, totalPages int) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	var rows []tele.Row

	if totalPages > 1 {
		var nav tele.Row
		if page > 1 {
			nav = append(nav, markup.Data("⬅️", cbWords, strconv.Itoa(page-1)))
		}
		if page < totalPages {
			nav = append(nav, markup.Data("➡️", cbWords, strconv.Itoa(page+1)))
		}
		rows = append(rows, nav)
	}

	mistakes := "❗ Mistakes only"
	if st.MistakesOnly {
		mistakes = "📋 All words"
	}
	rows = append(rows, markup.Row(
		markup.Data("↕️ Sort: "+sortLabel(nextSortKey(st.SortBy)), cbWordsSort),
		markup.Data(mistakes, cbWordsMistakes),
	))

	search := markup.Row(markup.Data("🔍 Search", cbWordsSearch))
	if st.Search != "" {
		search = append(search, markup.Data("✖️ Clear search", cbWordsSearchClear))
	}
	rows = append(rows, search, markup.Row(backToSectionButton(markup, st.Section)))

	markup.Inline(rows...)
	return markup
}

func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}

// Package bank holds the built-in word bank new learners start from.
package bank

import "emaster/internal/domain"

type entry struct {
	id          int
	english     string
	japanese    string
	sentence    string
	distractors []string
}

// LEAP: academic and important words
var leap = []entry{
	{id: 1, english: "concept", japanese: "概念"},
	{id: 2, english: "establish", japanese: "～を設立する"},
	{id: 3, english: "indicate", japanese: "～を指し示す"},
	{id: 4, english: "individual", japanese: "個々の"},
	{id: 5, english: "significance", japanese: "重要性"},
	{id: 6, english: "theory", japanese: "理論"},
	{id: 7, english: "factor", japanese: "要因"},
	{id: 8, english: "environment", japanese: "環境"},
	{id: 9, english: "analyze", japanese: "～を分析する"},
	{id: 10, english: "evidence", japanese: "証拠"},
}

// TARGET: exam frequency words
var target = []entry{
	{id: 1, english: "admire", japanese: "～を賞賛する"},
	{id: 2, english: "attempt", japanese: "～を試みる"},
	{id: 3, english: "complain", japanese: "不平を言う"},
	{id: 4, english: "defend", japanese: "～を守る"},
	{id: 5, english: "encourage", japanese: "～を励ます"},
	{id: 6, english: "manage", japanese: "どうにか～する"},
	{id: 7, english: "refuse", japanese: "～を断る"},
	{id: 8, english: "struggle", japanese: "もがく・奮闘する"},
	{id: 9, english: "suffer", japanese: "苦しむ"},
	{id: 10, english: "warn", japanese: "～に警告する"},
}

// SCRAMBLE ids are unique across categories so (section, id) stays a key
var scrambleUsage = []entry{
	{1, "allow", "～を許可する (allow A to do)", "Her parents allow her to travel alone.", []string{"forgive", "let", "make"}},
	{2, "suggest", "～を提案する (suggest doing)", "He suggested going for a walk.", []string{"to go", "go", "gone"}},
	{3, "remind", "～に思い出させる (remind A of B)", "This song reminds me of my childhood.", []string{"remembers", "recalls", "memorizes"}},
	{4, "prevent", "～を妨げる (prevent A from doing)", "The rain prevented us from playing soccer.", []string{"avoided", "protected", "rejected"}},
	{5, "rob", "～から奪う (rob A of B)", "Someone robbed him of his wallet.", []string{"stole", "took", "deprived"}},
	{6, "apologize", "謝罪する (apologize to A for B)", "I must apologize to you for being late.", []string{"excuse", "pardon", "forgive"}},
	{7, "prefer", "～を好む (prefer A to B)", "I prefer coffee to tea.", []string{"than", "better", "more"}},
	{8, "worth", "価値がある (be worth doing)", "This book is worth reading.", []string{"value", "worthy", "valuable"}},
	{9, "used", "慣れている (be used to doing)", "I am used to getting up early.", []string{"use", "usage", "using"}},
	{10, "help", "～を避ける (cannot help doing)", "I couldn't help laughing at the joke.", []string{"but laughing", "to laugh", "laugh"}},
}

var scrambleVocab = []entry{
	{11, "fare", "運賃", "The bus fare has increased.", []string{"fee", "cost", "price"}},
	{12, "appointment", "予約 (面会・診察)", "I have a dental appointment at 3 pm.", []string{"reservation", "booking", "promise"}},
	{13, "custom", "習慣 (社会的)", "It is a custom to shake hands.", []string{"habit", "manner", "usage"}},
	{14, "audience", "聴衆", "The audience clapped loudly.", []string{"spectator", "guest", "visitor"}},
	{15, "shade", "日陰", "Let's sit in the shade.", []string{"shadow", "dark", "light"}},
	{16, "client", "依頼人", "The lawyer met with his client.", []string{"customer", "guest", "passenger"}},
	{17, "capacity", "収容能力", "The stadium has a capacity of 50,000.", []string{"ability", "capability", "power"}},
	{18, "harm", "害", "Smoking does harm to your health.", []string{"damage", "hurt", "injury"}},
	{19, "view", "眺め", "The view from the top is beautiful.", []string{"scenery", "sight", "look"}},
	{20, "reservation", "予約 (席・部屋)", "I made a reservation at the restaurant.", []string{"appointment", "promise", "plan"}},
}

var scrambleIdiom = []entry{
	{21, "look forward to", "～を楽しみに待つ", "I look forward to seeing you.", []string{"look up to", "look out for", "look down on"}},
	{22, "run out of", "～を使い果たす", "We ran out of gas.", []string{"run short of", "run away", "run over"}},
	{23, "put off", "～を延期する", "Don't put off your homework.", []string{"call off", "put on", "put out"}},
	{24, "call for", "～を必要とする", "This situation calls for immediate action.", []string{"call on", "call off", "call up"}},
	{25, "take after", "～に似ている", "She takes after her mother.", []string{"look like", "take over", "take care"}},
	{26, "bring up", "～を育てる", "She was brought up in a small village.", []string{"grow up", "bring about", "bring in"}},
	{27, "give in to", "～に屈する", "He finally gave in to their demands.", []string{"give up", "give off", "give away"}},
	{28, "make up for", "～の埋め合わせをする", "I worked hard to make up for lost time.", []string{"make up", "make out", "make for"}},
	{29, "carry out", "～を実行する", "They carried out the plan perfectly.", []string{"carry on", "carry away", "carry over"}},
	{30, "do away with", "～を廃止する", "We should do away with these old rules.", []string{"put up with", "catch up with", "come up with"}},
}

var scrambleConversation = []entry{
	{31, "Help yourself.", "ご自由にどうぞ", "Please help yourself to the cake.", []string{"Do it yourself.", "Take care.", "Be careful."}},
	{32, "Hold the line.", "電話を切らずにお待ちください", "Hold the line, please. I'll check for you.", []string{"Hang up.", "Call back.", "Speak up."}},
	{33, "Go ahead.", "どうぞ", "May I use your pen? - Sure, go ahead.", []string{"Go away.", "Come here.", "Watch out."}},
	{34, "That depends.", "状況次第だね", "Are you going out? - That depends on the weather.", []string{"That's right.", "No doubt.", "I agree."}},
	{35, "You have the wrong number.", "番号が間違っています", "I'm afraid you have the wrong number.", []string{"bad number", "mistake number", "false number"}},
	{36, "Be my guest.", "遠慮なくどうぞ", "Can I use your phone? - Be my guest.", []string{"Be careful.", "Be quiet.", "Be happy."}},
	{37, "What a shame!", "それは残念だ！", "I failed the test. - What a shame!", []string{"What a pity!", "What a surprise!", "What a mess!"}},
	{38, "Mind your own business.", "余計なお世話だ", "Why are you so late? - Mind your own business.", []string{"Care about yourself.", "Do your job.", "Watch your step."}},
	{39, "I can't make it.", "都合がつかない", "Can you come to the party? - Sorry, I can't make it.", []string{"I can't do it.", "I can't go.", "I can't take it."}},
	{40, "Let's call it a day.", "今日はここまでにしよう", "We've done enough work. Let's call it a day.", []string{"Let's finish it.", "Let's go home.", "Let's stop it."}},
}

// Words returns a fresh copy of the built-in bank with zeroed stats, in
// storage order.
func Words() []domain.Word {
	var words []domain.Word

	add := func(entries []entry, section domain.Section, cat domain.ScrambleCategory) {
		for _, e := range entries {
			var distractors []string
			if len(e.distractors) > 0 {
				distractors = append([]string(nil), e.distractors...)
			}
			words = append(words, domain.Word{
				ID:               e.id,
				English:          e.english,
				Japanese:         e.japanese,
				Section:          section,
				ScrambleCategory: cat,
				Sentence:         e.sentence,
				Distractors:      distractors,
			})
		}
	}

	add(leap, domain.SectionLeap, "")
	add(target, domain.SectionTarget, "")
	add(scrambleUsage, domain.SectionScramble, domain.CategoryUsage)
	add(scrambleVocab, domain.SectionScramble, domain.CategoryVocab)
	add(scrambleIdiom, domain.SectionScramble, domain.CategoryIdiom)
	add(scrambleConversation, domain.SectionScramble, domain.CategoryConversation)

	return words
}

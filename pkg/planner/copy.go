package planner

// FooterKind selects the explanatory text at the bottom of a page.
type FooterKind int

const (
	FooterNone FooterKind = iota
	FooterDailyLog
	FooterWeeklyAction
	FooterWeeklyReflection
	FooterCollectionIndex
	FooterFutureLog
	FooterMonthlyTimeline
	FooterMonthlyAction
	FooterIntention
	FooterGoals
)

var footerNames = map[FooterKind]string{
	FooterDailyLog:         "daily-log",
	FooterWeeklyAction:     "weekly-action",
	FooterWeeklyReflection: "weekly-reflection",
	FooterCollectionIndex:  "collection-index",
	FooterFutureLog:        "future-log",
	FooterMonthlyTimeline:  "monthly-timeline",
	FooterMonthlyAction:    "monthly-action",
	FooterIntention:        "intention",
	FooterGoals:            "goals",
}

func (k FooterKind) String() string {
	if n, ok := footerNames[k]; ok {
		return n
	}
	return "none"
}

// FooterKinds lists every footer with text, in page order.
func FooterKinds() []FooterKind {
	return []FooterKind{
		FooterCollectionIndex,
		FooterIntention,
		FooterGoals,
		FooterFutureLog,
		FooterMonthlyTimeline,
		FooterMonthlyAction,
		FooterWeeklyAction,
		FooterWeeklyReflection,
		FooterDailyLog,
	}
}

// ParseFooterKind looks a footer up by its String name.
func ParseFooterKind(name string) (FooterKind, bool) {
	for k, n := range footerNames {
		if n == name {
			return k, true
		}
	}
	return FooterNone, false
}

// FooterText returns the copy of a footer; emphasis is marked with '|'.
func FooterText(k FooterKind) string {
	return footerTexts[k]
}

var footerTexts = map[FooterKind]string{
	FooterDailyLog: "This is your |Daily Log,| designed to declutter your mind and keep you focused " +
		"throughout the day. |Rapid Log| your thoughts as they bubble up. Add a note page " +
		"with the Dot S template if you need more space for notes. You'll find this in " +
		"Document settings in the toolbar.",
	FooterWeeklyAction: "Write down only what you can get done this week. Think of this as your weekly " +
		"commitments. If something is too big, break into smaller steps. When you're done, " +
		"number the top three things that would make this week a success.",
	FooterWeeklyReflection: "Tidy your weekly entries. Update the monthly timeline and action plan. Acknowledge " +
		"up to three things that moved you toward, and up to three things that moved you away, " +
		"from the life you want/who you want to be, in a few sentences. Migrate only relevant " +
		"|Actions| into the next week's Action Plan. Enact any insight from your reflection " +
		"into the action plan.",
	FooterCollectionIndex: "Use this index to organize and group related information by topic. We call them " +
		"|Collections.| Common Collections include goals, fitness trackers, reading lists, " +
		"class notes, and more. To keep your Collections organized, simply add your Collection " +
		"to the list and use the links to quickly find your content.",
	FooterFutureLog: "The Future log is a |Collection| where you can store |actions| and |events| that fall " +
		"outside the current month. More than just being a type of calendar, the Future log also " +
		"provides an overview of your commitments over time.",
	FooterMonthlyTimeline: "This page is your |Timeline.| Though it can be used as a traditional calendar by adding " +
		"upcoming events, it's recommended to use the Timeline to log events after they've happened. " +
		"This will provide a more accurate and useful record of your life.",
	FooterMonthlyAction: "This page is your |Monthly Action Plan.| It's designed to help you organize and prioritize " +
		"your monthly |tasks.| It consists of new tasks, Future Log items scheduled for this month, " +
		"and any important unfinished tasks from the previous month.",
	FooterIntention: "An intention is a commitment to a process. Intentions bring meaning into our lives now, so that we " +
		"can navigate our lives based on what it is as opposed to what may be. They're powerful tools that we " +
		"can use to instantly direct our focus for as long as we need. We set an intention to use as our compass.",
	FooterGoals: "A goal is the definition of an outcome. Goals help us articulate what we want, transforming ephemeral " +
		"desires into tangible targets, lofty dreams into fixed destinations. Taking time to carefully define our " +
		"destinations, can provide a much needed sense of purpose and direction.",
}

// Guide page copy.
const (
	systemDescription = "The Bullet Journal Method is a mindfulness practice that's designed to work like a " +
		"productivity system. Be it for your career, education, family, or health, BuJo offers a lot of " +
		"resources for how to help you |write a better life.| The best way to learn how to Bullet Journal " +
		"is to experience it. This guide is designed to help you get up and running with the basics. " +
		"Below is a list of resources to help you level up your practice."
	systemRapidLogging = "Rapid Logging allows you to quickly capture and categorize your thoughts and feelings as " +
		"bulleted lists. Each bullet represents one of four categories of information:"
	systemActionStates = "Note that we use a dot instead of checkboxes for actions. That's because they have four states " +
		"that allows us to monitor the status of an action:"

	setupFuture = "The Future Log lets you see your future. It is an outline of the life you're choosing to write. " +
		"The Future log is a |Collection| where you can store |actions| and |events| that fall outside the " +
		"current month. More than just being a type of calendar, the Future log also provides an " +
		"overview of your commitments over time."
	setupMonthly  = "Two pages to reset, reprioritize, and recommit to what you allow into your life every month."
	setupTimeline = "The first page is your |Timeline.| Though it can be used as a traditional calendar " +
		"by adding upcoming events, it's recommended to use the Timeline to log " +
		"events after they've happened."
	setupMonthlyAction = "The next page is your Monthly |Action Plan.| It's designed to help you organize " +
		"and prioritize your monthly |Tasks.| It consists of new Tasks, Future Log items " +
		"scheduled for this month."
	setupReflection = "Tidy your weekly entries. Update the monthly timeline and action plan. " +
		"Acknowledge up to three things that moved you toward, and up to three " +
		"things that moved you away. Migrate only relevant |Actions| into the next week's Action Plan."
	setupWeeklyAction = "Write down only what you can get done this week. Think of this as your weekly " +
		"commitments. If something is too big, break into smaller steps. When you're " +
		"done, number the top three things."
	setupDaily = "The Daily Log is designed to declutter your mind and keep you focused throughout the day. " +
		"|Rapid Log| your thoughts as they bubble up."

	practiceIntro = "Writing things down is important, but it's only half of the equation. We can quickly " +
		"accumulate so much information that it's overwhelming. Reflection helps you slow down, " +
		"make sense of your experiences, and align with what truly matters. In the Bullet Journal " +
		"Method, reflection isn't about dwelling on the past--it's about learning from it to move " +
		"forward with clarity over and over again. It's a practice."
	practiceName = "Rapid logging, the foundation of Bullet Journaling, lets you Record your experience by " +
		"|N.A.M.E.,| organizing it into |N|otes, |A|ctions, |M|oods, and |E|vents. Reflection builds on this " +
		"by helping you |T.A.M.E.| your Record, turning raw information into insights, and then " +
		"putting those insights into action."
	practiceTame = "|T.A.M.E.| is a step-by-step process for reflection, be it daily, weekly, or monthly. It helps you " +
		"make sense of your experiences and turn insights into action. Here's how it works:"

	reflectDaily = "Tidy your daily entries. Acknowledge up to three things that moved you toward, and up to " +
		"three things that moved you away, from the life you want/who you want to be, with an up " +
		"or down arrow next to the entry. Migrate: Identify what needs to be carried forward into " +
		"tomorrow's plan. Enact any daily insight by writing them down as actions."
	reflectWeekly = "Tidy your weekly entries. Update the monthly timeline and action plan. Acknowledge up " +
		"to three things that moved you toward, and up to three things that moved you away, from " +
		"the life you want/who you want to be, in a few sentences. Migrate only relevant |Actions| into " +
		"the next week's Action Plan. Enact any insight from your reflection into the action plan. " +
		"Prioritize your action plan based on your intention or insight. |Take action.|"
	reflectMonthly = "Tidy up your record for the last month. Acknowledge up to three things that moved you " +
		"toward, and up to three things that moved you away, from the life you want/who you want " +
		"to be, in short paragraphs. Migrate Actions that matter for the month ahead. Enact insights " +
		"from your reflection onto your monthly action plan. Prioritize your action plan based on " +
		"your intention or insight. |Take action.|"
)

type tameStep struct {
	title string
	desc  string
}

var tameSteps = []tameStep{
	{"1. T - Tidy", "your record. Cross off completed tasks, migrate unfinished ones, and declutter what no longer matters. This clears mental and physical space."},
	{"2. A - Acknowledge", "your actions: Look back on what happened. Identify a few things that aligned with your intention and a few that didn't. For example, did a meeting help you focus on your goal, or did an unexpected distraction pull you off track?"},
	{"3. M - Migrate", "what matters. Let go of what doesn't. Yes, this means rewriting open actions into the day, weekly, or the month where they will get done. It's about getting clear on what we're committing to in each stretch of time."},
	{"4. E - Enact", "your insights into your Action plans. Set clear priorities for the next day, week, or month to stay on course."},
}

// guideCopy lists every fixed paragraph drawn with emphasis markup.
func guideCopy() []string {
	out := []string{
		systemDescription, systemRapidLogging, systemActionStates,
		setupFuture, setupMonthly, setupTimeline, setupMonthlyAction,
		setupReflection, setupWeeklyAction, setupDaily,
		practiceIntro, practiceName, practiceTame,
		reflectDaily, reflectWeekly, reflectMonthly,
	}
	for _, s := range tameSteps {
		out = append(out, s.desc)
	}
	for _, k := range FooterKinds() {
		out = append(out, FooterText(k))
	}
	return out
}

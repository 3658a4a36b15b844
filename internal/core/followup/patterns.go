package followup

import "regexp"

// Pattern lists are scanned in declaration order and the first match wins.
// Order is part of the observable contract: the earliest-matching category in
// ask -> promise -> deadline scan order supplies the surfaced quote, so do not
// reorder these for tidiness

// askPatterns are phrases asking the recipient to act
var askPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)can you (?:please )?confirm`),
	regexp.MustCompile(`(?i)could you (?:please )?(?:confirm|review|send|share|update|check)`),
	regexp.MustCompile(`(?i)please (?:review|confirm|send|share|advise|approve|sign|respond)`),
	regexp.MustCompile(`(?i)let me know (?:when|if|once|by|what)`),
	regexp.MustCompile(`(?i)follow(?:ing)? up on`),
	regexp.MustCompile(`(?i)\bstatus update\b`),
	regexp.MustCompile(`(?i)\bnext steps\b`),
	regexp.MustCompile(`(?i)\baction items?\b`),
	regexp.MustCompile(`(?i)can you (?:send|share|provide|get|give)`),
	regexp.MustCompile(`(?i)what(?:'s| is) the status`),
	regexp.MustCompile(`(?i)any updates? on`),
	regexp.MustCompile(`(?i)would you mind`),
	regexp.MustCompile(`(?i)waiting (?:on|for) your`),
	regexp.MustCompile(`(?i)please get back to (?:me|us)`),
	regexp.MustCompile(`(?i)do you have (?:an update|the|any)`),
}

// promisePatterns are phrases committing the sender to act
var promisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)i'?ll (?:send|get|have|share|update|review|handle|take care of|follow up|circle back|look into)`),
	regexp.MustCompile(`(?i)let me (?:update|check|get back|pull|put together|look into)`),
	regexp.MustCompile(`(?i)\bwill do\b`),
	regexp.MustCompile(`(?i)\bon it\b`),
	regexp.MustCompile(`(?i)i will (?:send|get|have|share|update|review|handle|follow up)`),
	regexp.MustCompile(`(?i)i can (?:send|get|have) (?:it|this|that|them|you)`),
	regexp.MustCompile(`(?i)i'?m (?:working on|getting|putting together)`),
}

// deadlinePatterns anchor a point in time; the matched substring becomes DueText
var deadlinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)by (?:tomorrow|today|tonight|eod|eow|eom|end of (?:the )?(?:day|week|month)|mon(?:day)?\b|tue(?:sday)?\b|wed(?:nesday)?\b|thu(?:rsday)?\b|fri(?:day)?\b|sat(?:urday)?\b|sun(?:day)?\b|next week)`),
	regexp.MustCompile(`(?i)due (?:by|on|before)\b`),
	regexp.MustCompile(`(?i)within \d+ (?:minutes?|hours?|days?|weeks?)`),
	regexp.MustCompile(`(?i)no later than`),
	regexp.MustCompile(`(?i)before (?:the )?end of (?:day|week|month)`),
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}\b`),
	regexp.MustCompile(`\b\d{1,2}:\d{2}\s?(?:am|pm|AM|PM)?\b`),
}

// firstMatch scans patterns in order and returns the first match in s
func firstMatch(patterns []*regexp.Regexp, s string) (string, bool) {
	for _, re := range patterns {
		if m := re.FindString(s); m != "" {
			return m, true
		}
	}
	return "", false
}

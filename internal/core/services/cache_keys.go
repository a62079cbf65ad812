package services

import "fmt"

// Cache key layout. Prefixes exist so writers can sweep a whole family of
// keys when the exact member is unknown at the call site.
const (
	journalKeyPrefix      = "journal_"
	journalsUserKeyPrefix = "journals_user_"
	entriesJournalPrefix  = "entries_journal_"
)

func journalKey(journalID int64) string {
	return fmt.Sprintf("%s%d", journalKeyPrefix, journalID)
}

func journalsUserKey(userID int64) string {
	return fmt.Sprintf("%s%d", journalsUserKeyPrefix, userID)
}

func entriesJournalKey(journalID int64) string {
	return fmt.Sprintf("%s%d", entriesJournalPrefix, journalID)
}

package ledger

// AccountType is the kind of an account.
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
)

// AccountTypes lists the accepted account types in declaration order.
var AccountTypes = []AccountType{AccountTypeChecking, AccountTypeSavings}

// Valid reports whether t is one of AccountTypes.
func (t AccountType) Valid() bool {
	return t == AccountTypeChecking || t == AccountTypeSavings
}

// EntryType is shared by transactions and recurrences.
type EntryType string

const (
	EntryTypeIncome   EntryType = "income"
	EntryTypeExpense  EntryType = "expense"
	EntryTypeTransfer EntryType = "transfer"
)

// EntryTypes lists the accepted entry types in declaration order.
var EntryTypes = []EntryType{EntryTypeIncome, EntryTypeExpense, EntryTypeTransfer}

// Valid reports whether t is one of EntryTypes.
func (t EntryType) Valid() bool {
	switch t {
	case EntryTypeIncome, EntryTypeExpense, EntryTypeTransfer:
		return true
	}
	return false
}

// Frequency is how often a recurrence falls due.
type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyBimonthly Frequency = "bimonthly"
	FrequencyYearly    Frequency = "yearly"
)

// Frequencies lists the accepted recurrence frequencies in declaration order.
var Frequencies = []Frequency{
	FrequencyDaily,
	FrequencyWeekly,
	FrequencyBiweekly,
	FrequencyMonthly,
	FrequencyBimonthly,
	FrequencyYearly,
}

// Valid reports whether f is one of Frequencies.
func (f Frequency) Valid() bool {
	for _, v := range Frequencies {
		if f == v {
			return true
		}
	}
	return false
}

// MonthBased reports whether day_of_month applies to the frequency.
func (f Frequency) MonthBased() bool {
	return f == FrequencyMonthly || f == FrequencyBimonthly || f == FrequencyYearly
}

// Status separates forecast transactions from realized ones.
type Status string

const (
	StatusProjected Status = "projected"
	StatusEffective Status = "effective"
)

// Statuses lists the accepted transaction statuses in declaration order.
var Statuses = []Status{StatusProjected, StatusEffective}

// Valid reports whether s is one of Statuses.
func (s Status) Valid() bool {
	return s == StatusProjected || s == StatusEffective
}

const (
	// MinDayOfMonth and MaxDayOfMonth bound day_of_month and fiscal_day_start.
	MinDayOfMonth = 1
	MaxDayOfMonth = 31

	// MaxJSONSize is the largest accepted metadata or active_parsers payload.
	MaxJSONSize = 2000000
)

package schema

import (
	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/ledger"
)

// OwnerRule restricts an operation to the record's owner.
const OwnerRule = "user = @request.auth.id"

// Collection ids of the deployed ledger schema.
const (
	UsersID        = "_pb_users_auth_"
	AccountsID     = "accounts000000"
	MembersID      = "members000000"
	CategoriesID   = "categories000000"
	RecurrencesID  = "recurrences000"
	TransactionsID = "transactions00"
	RawInboxID     = "rawinbox000000"
	SettingsID     = "settings000000"
)

func ownerRule() Rule {
	rule := OwnerRule
	return &rule
}

func textField(id, name string, required, presentable bool) Field {
	return Field{
		ID: id, Name: name, Type: FieldText, Required: required, Presentable: presentable,
		Options: Options{"min": nil, "max": nil, "pattern": ""},
	}
}

func numberField(id, name string, required bool, min, max any, noDecimal bool) Field {
	return Field{
		ID: id, Name: name, Type: FieldNumber, Required: required,
		Options: Options{"min": min, "max": max, "noDecimal": noDecimal},
	}
}

func boolField(id, name string) Field {
	return Field{ID: id, Name: name, Type: FieldBool, Options: Options{}}
}

func dateField(id, name string) Field {
	return Field{ID: id, Name: name, Type: FieldDate, Required: true, Options: Options{"min": "", "max": ""}}
}

func selectField[T ~string](id, name string, values []T) Field {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = string(v)
	}
	return Field{
		ID: id, Name: name, Type: FieldSelect, Required: true,
		Options: Options{"maxSelect": 1, "values": strs},
	}
}

func relationField(id, name, target string, required, cascade bool) Field {
	return Field{
		ID: id, Name: name, Type: FieldRelation, Required: required,
		Options: Options{
			"collectionId":  target,
			"cascadeDelete": cascade,
			"minSelect":     nil,
			"maxSelect":     1,
			"displayFields": nil,
		},
	}
}

func jsonField(id, name string) Field {
	return Field{ID: id, Name: name, Type: FieldJSON, Options: Options{"maxSize": ledger.MaxJSONSize}}
}

func userField(prefix string) Field {
	return relationField(prefix+"_user", "user", UsersID, true, true)
}

func ownedCollection(id, name string, fields ...Field) Collection {
	return Collection{
		ID:         id,
		Name:       name,
		Type:       "base",
		Fields:     fields,
		Indexes:    []string{},
		ListRule:   ownerRule(),
		ViewRule:   ownerRule(),
		CreateRule: ownerRule(),
		UpdateRule: ownerRule(),
		DeleteRule: ownerRule(),
		Options:    Options{},
	}
}

// Ledger returns the declarations of every ledger collection, in the order
// they must be reconciled so relation targets exist first.
func Ledger() []Collection {
	accounts := ownedCollection(AccountsID, access.Accounts,
		textField("accounts_name", "name", true, true),
		selectField("accounts_type", "type", ledger.AccountTypes),
		numberField("accounts_initial_balance", "initial_balance", false, nil, nil, false),
		userField("accounts"),
	)

	members := ownedCollection(MembersID, access.Members,
		textField("members_name", "name", true, true),
		textField("members_icon", "icon", false, false),
		userField("members"),
	)

	categories := ownedCollection(CategoriesID, access.Categories,
		textField("categories_name", "name", true, true),
		numberField("categories_icon", "icon_code_point", true, nil, nil, true),
		textField("categories_color", "color_hex", true, false),
		boolField("categories_is_system", "is_system"),
		userField("categories"),
	)

	recurrences := ownedCollection(RecurrencesID, access.Recurrences,
		numberField("recurrences_amount", "amount", true, nil, nil, false),
		textField("recurrences_label", "label", true, true),
		selectField("recurrences_type", "type", ledger.EntryTypes),
		selectField("recurrences_frequency", "frequency", ledger.Frequencies),
		numberField("recurrences_day", "day_of_month", false, ledger.MinDayOfMonth, ledger.MaxDayOfMonth, true),
		dateField("recurrences_next", "next_due_date"),
		boolField("recurrences_active", "active"),
		relationField("recurrences_acct", "account", AccountsID, true, true),
		relationField("recurrences_target", "target_account", AccountsID, false, false),
		userField("recurrences"),
	)

	transactions := ownedCollection(TransactionsID, access.Transactions,
		numberField("transactions_amount", "amount", true, nil, nil, false),
		textField("transactions_label", "label", true, true),
		selectField("transactions_type", "type", ledger.EntryTypes),
		dateField("transactions_date", "date"),
		selectField("transactions_status", "status", ledger.Statuses),
		boolField("transactions_is_auto", "is_automatic"),
		relationField("transactions_acct", "account", AccountsID, true, true),
		textField("transactions_cat", "category", false, false),
		relationField("transactions_recur", "recurrence", RecurrencesID, false, false),
		relationField("transactions_member", "member", MembersID, false, false),
		relationField("transactions_target", "target_account", AccountsID, false, false),
		userField("transactions"),
	)

	amount := numberField("rawinbox_amount", "amount", true, nil, nil, false)
	rawInbox := ownedCollection(RawInboxID, access.RawInbox,
		dateField("rawinbox_date", "date"),
		textField("rawinbox_label", "label", true, true),
		amount,
		userField("rawinbox"),
		boolField("rawinbox_proc", "is_processed"),
		textField("rawinbox_payl", "raw_payload", false, false),
		jsonField("rawinbox_meta", "metadata"),
	)
	rawInbox.CreateRule = nil

	settings := ownedCollection(SettingsID, access.Settings,
		numberField("settings_fiscal", "fiscal_day_start", true, ledger.MinDayOfMonth, ledger.MaxDayOfMonth, true),
		userField("settings"),
		jsonField("set_parsers", "active_parsers"),
	)

	return []Collection{accounts, members, categories, recurrences, transactions, rawInbox, settings}
}

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnamnesesColumns holds the columns for the "anamneses" table.
	AnamnesesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID, Unique: true},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "submitted_at", Type: field.TypeTime},
	}
	// AnamnesesTable holds the schema information for the "anamneses" table.
	AnamnesesTable = &schema.Table{
		Name:       "anamneses",
		Columns:    AnamnesesColumns,
		PrimaryKey: []*schema.Column{AnamnesesColumns[0]},
	}
	// AppSettingsColumns holds the columns for the "app_settings" table.
	AppSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "key", Type: field.TypeString, Unique: true, Size: 128},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
	}
	// AppSettingsTable holds the schema information for the "app_settings" table.
	AppSettingsTable = &schema.Table{
		Name:       "app_settings",
		Columns:    AppSettingsColumns,
		PrimaryKey: []*schema.Column{AppSettingsColumns[0]},
	}
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_name", Type: field.TypeString, Size: 200},
		{Name: "patient_email", Type: field.TypeString, Size: 255},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "duration_minutes", Type: field.TypeInt, Default: 50},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"confirmed"}, Default: "confirmed"},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "appointments_users_patient",
				Columns:    []*schema.Column{AppointmentsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_start_time",
				Unique:  true,
				Columns: []*schema.Column{AppointmentsColumns[5]},
			},
			{
				Name:    "appointment_patient_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[8], AppointmentsColumns[5]},
			},
		},
	}
	// AvailabilityWindowsColumns holds the columns for the "availability_windows" table.
	AvailabilityWindowsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "date", Type: field.TypeString, Unique: true, Size: 10},
		{Name: "times", Type: field.TypeJSON},
	}
	// AvailabilityWindowsTable holds the schema information for the "availability_windows" table.
	AvailabilityWindowsTable = &schema.Table{
		Name:       "availability_windows",
		Columns:    AvailabilityWindowsColumns,
		PrimaryKey: []*schema.Column{AvailabilityWindowsColumns[0]},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID, Unique: true},
		{Name: "last_message_at", Type: field.TypeTime, Nullable: true},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
	}
	// DiaryEntriesColumns holds the columns for the "diary_entries" table.
	DiaryEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "day", Type: field.TypeString, Size: 10},
		{Name: "meal", Type: field.TypeEnum, Enums: []string{"breakfast", "lunch", "dinner", "snack"}},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "media_key", Type: field.TypeString, Nullable: true},
	}
	// DiaryEntriesTable holds the schema information for the "diary_entries" table.
	DiaryEntriesTable = &schema.Table{
		Name:       "diary_entries",
		Columns:    DiaryEntriesColumns,
		PrimaryKey: []*schema.Column{DiaryEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "diaryentry_patient_id_day",
				Unique:  false,
				Columns: []*schema.Column{DiaryEntriesColumns[3], DiaryEntriesColumns[4]},
			},
		},
	}
	// EarnedPinsColumns holds the columns for the "earned_pins" table.
	EarnedPinsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "tier_name", Type: field.TypeString, Size: 64},
		{Name: "tier_type", Type: field.TypeEnum, Enums: []string{"hydration", "task"}},
	}
	// EarnedPinsTable holds the schema information for the "earned_pins" table.
	EarnedPinsTable = &schema.Table{
		Name:       "earned_pins",
		Columns:    EarnedPinsColumns,
		PrimaryKey: []*schema.Column{EarnedPinsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "earnedpin_patient_id_tier_name_tier_type",
				Unique:  true,
				Columns: []*schema.Column{EarnedPinsColumns[2], EarnedPinsColumns[3], EarnedPinsColumns[4]},
			},
			{
				Name:    "earnedpin_patient_id_tier_type",
				Unique:  false,
				Columns: []*schema.Column{EarnedPinsColumns[2], EarnedPinsColumns[4]},
			},
		},
	}
	// GamificationStatesColumns holds the columns for the "gamification_states" table.
	GamificationStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID, Unique: true},
		{Name: "total_goal_met_days", Type: field.TypeInt, Default: 0},
		{Name: "week_key", Type: field.TypeString, Size: 8, Default: ""},
		{Name: "weekly_streak_count", Type: field.TypeInt, Default: 0},
		{Name: "total_task_tiers_completed", Type: field.TypeInt, Default: 0},
		{Name: "all_done_day", Type: field.TypeString, Size: 10, Default: ""},
	}
	// GamificationStatesTable holds the schema information for the "gamification_states" table.
	GamificationStatesTable = &schema.Table{
		Name:       "gamification_states",
		Columns:    GamificationStatesColumns,
		PrimaryKey: []*schema.Column{GamificationStatesColumns[0]},
	}
	// HabitsColumns holds the columns for the "habits" table.
	HabitsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// HabitsTable holds the schema information for the "habits" table.
	HabitsTable = &schema.Table{
		Name:       "habits",
		Columns:    HabitsColumns,
		PrimaryKey: []*schema.Column{HabitsColumns[0]},
	}
	// HabitChecksColumns holds the columns for the "habit_checks" table.
	HabitChecksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "habit_id", Type: field.TypeUUID},
		{Name: "day", Type: field.TypeString, Size: 10},
	}
	// HabitChecksTable holds the schema information for the "habit_checks" table.
	HabitChecksTable = &schema.Table{
		Name:       "habit_checks",
		Columns:    HabitChecksColumns,
		PrimaryKey: []*schema.Column{HabitChecksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "habitcheck_patient_id_habit_id_day",
				Unique:  true,
				Columns: []*schema.Column{HabitChecksColumns[2], HabitChecksColumns[3], HabitChecksColumns[4]},
			},
			{
				Name:    "habitcheck_patient_id_day",
				Unique:  false,
				Columns: []*schema.Column{HabitChecksColumns[2], HabitChecksColumns[4]},
			},
		},
	}
	// HydrationLogsColumns holds the columns for the "hydration_logs" table.
	HydrationLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "day", Type: field.TypeString, Size: 10},
		{Name: "intake_ml", Type: field.TypeInt, Default: 0},
		{Name: "goal_ml", Type: field.TypeInt},
		{Name: "goal_met", Type: field.TypeBool, Default: false},
	}
	// HydrationLogsTable holds the schema information for the "hydration_logs" table.
	HydrationLogsTable = &schema.Table{
		Name:       "hydration_logs",
		Columns:    HydrationLogsColumns,
		PrimaryKey: []*schema.Column{HydrationLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hydrationlog_patient_id_day",
				Unique:  true,
				Columns: []*schema.Column{HydrationLogsColumns[3], HydrationLogsColumns[4]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "conversation_id", Type: field.TypeUUID},
		{Name: "sender_id", Type: field.TypeUUID},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "media_key", Type: field.TypeString, Nullable: true},
		{Name: "is_read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[3], MessagesColumns[1]},
			},
			{
				Name:    "message_sender_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[4]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString, Size: 64},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "is_read", Type: field.TypeBool, Default: false},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_is_read_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[7], NotificationsColumns[1]},
			},
		},
	}
	// PostsColumns holds the columns for the "posts" table.
	PostsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "author_id", Type: field.TypeUUID},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "media_key", Type: field.TypeString, Nullable: true},
		{Name: "like_count", Type: field.TypeInt, Default: 0},
	}
	// PostsTable holds the schema information for the "posts" table.
	PostsTable = &schema.Table{
		Name:       "posts",
		Columns:    PostsColumns,
		PrimaryKey: []*schema.Column{PostsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "post_created_at",
				Unique:  false,
				Columns: []*schema.Column{PostsColumns[1]},
			},
			{
				Name:    "post_author_id",
				Unique:  false,
				Columns: []*schema.Column{PostsColumns[4]},
			},
		},
	}
	// PostReactionsColumns holds the columns for the "post_reactions" table.
	PostReactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "post_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// PostReactionsTable holds the schema information for the "post_reactions" table.
	PostReactionsTable = &schema.Table{
		Name:       "post_reactions",
		Columns:    PostReactionsColumns,
		PrimaryKey: []*schema.Column{PostReactionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "postreaction_post_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{PostReactionsColumns[2], PostReactionsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"patient", "nutritionist"}, Default: "patient"},
		{Name: "onboarding_step", Type: field.TypeEnum, Enums: []string{"anamnesis", "scheduling", "completed"}, Default: "anamnesis"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "SUSPENDED"}, Default: "ACTIVE"},
		{Name: "avatar_key", Type: field.TypeString, Nullable: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// UserSessionsColumns holds the columns for the "user_sessions" table.
	UserSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "refresh_token_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true, Size: 45},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// UserSessionsTable holds the schema information for the "user_sessions" table.
	UserSessionsTable = &schema.Table{
		Name:       "user_sessions",
		Columns:    UserSessionsColumns,
		PrimaryKey: []*schema.Column{UserSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_sessions_users_user",
				Columns:    []*schema.Column{UserSessionsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usersession_session_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[3]},
			},
			{
				Name:    "usersession_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnamnesesTable,
		AppSettingsTable,
		AppointmentsTable,
		AvailabilityWindowsTable,
		ConversationsTable,
		DiaryEntriesTable,
		EarnedPinsTable,
		GamificationStatesTable,
		HabitsTable,
		HabitChecksTable,
		HydrationLogsTable,
		MessagesTable,
		NotificationsTable,
		PostsTable,
		PostReactionsTable,
		UsersTable,
		UserSessionsTable,
	}
)

func init() {
	AppointmentsTable.ForeignKeys[0].RefTable = UsersTable
	UserSessionsTable.ForeignKeys[0].RefTable = UsersTable
}

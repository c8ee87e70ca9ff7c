// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "psychologist_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "scheduled_at", Type: field.TypeTime},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_cancelled", Type: field.TypeBool, Default: false},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_psychologist_id_scheduled_at",
				Unique:  true,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[5]},
				Annotation: &entsql.IndexAnnotation{
					Where: "NOT is_cancelled",
				},
			},
			{
				Name:    "appointment_patient_id_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[5]},
			},
		},
	}
	// ChatsColumns holds the columns for the "chats" table.
	ChatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_request_id", Type: field.TypeUUID},
		{Name: "is_closed", Type: field.TypeBool, Default: false},
		{Name: "last_message_at", Type: field.TypeTime, Nullable: true},
	}
	// ChatsTable holds the schema information for the "chats" table.
	ChatsTable = &schema.Table{
		Name:       "chats",
		Columns:    ChatsColumns,
		PrimaryKey: []*schema.Column{ChatsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chat_session_request_id",
				Unique:  true,
				Columns: []*schema.Column{ChatsColumns[2]},
			},
		},
	}
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "chat_id", Type: field.TypeUUID},
		{Name: "sender_user_id", Type: field.TypeUUID},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "sent_at", Type: field.TypeTime},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_chat_id_sent_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[1], ChatMessagesColumns[4]},
			},
			{
				Name:    "chatmessage_sender_user_id",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[2]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
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
				Name:    "notification_user_id_is_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[6]},
			},
			{
				Name:    "notification_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[1]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "emotional_state", Type: field.TypeString, Nullable: true},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patient_user_id",
				Unique:  true,
				Columns: []*schema.Column{PatientsColumns[3]},
			},
		},
	}
	// PsychologistsColumns holds the columns for the "psychologists" table.
	PsychologistsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "is_profile_visible", Type: field.TypeBool, Default: true},
		{Name: "professional_license", Type: field.TypeString},
		{Name: "university", Type: field.TypeString, Nullable: true},
		{Name: "graduation_year", Type: field.TypeInt, Nullable: true},
		{Name: "bio", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// PsychologistsTable holds the schema information for the "psychologists" table.
	PsychologistsTable = &schema.Table{
		Name:       "psychologists",
		Columns:    PsychologistsColumns,
		PrimaryKey: []*schema.Column{PsychologistsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "psychologist_user_id",
				Unique:  true,
				Columns: []*schema.Column{PsychologistsColumns[3]},
			},
			{
				Name:    "psychologist_is_profile_visible",
				Unique:  false,
				Columns: []*schema.Column{PsychologistsColumns[4]},
			},
		},
	}
	// PsychologistTagsColumns holds the columns for the "psychologist_tags" table.
	PsychologistTagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "psychologist_id", Type: field.TypeUUID},
		{Name: "tag_id", Type: field.TypeUUID},
	}
	// PsychologistTagsTable holds the schema information for the "psychologist_tags" table.
	PsychologistTagsTable = &schema.Table{
		Name:       "psychologist_tags",
		Columns:    PsychologistTagsColumns,
		PrimaryKey: []*schema.Column{PsychologistTagsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "psychologisttag_psychologist_id_tag_id",
				Unique:  true,
				Columns: []*schema.Column{PsychologistTagsColumns[1], PsychologistTagsColumns[2]},
			},
			{
				Name:    "psychologisttag_tag_id",
				Unique:  false,
				Columns: []*schema.Column{PsychologistTagsColumns[2]},
			},
		},
	}
	// SessionRequestsColumns holds the columns for the "session_requests" table.
	SessionRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "psychologist_id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "accepted", "rejected", "cancelled", "derived"}, Default: "pending"},
		{Name: "initial_message", Type: field.TypeString, Size: 2147483647},
	}
	// SessionRequestsTable holds the schema information for the "session_requests" table.
	SessionRequestsTable = &schema.Table{
		Name:       "session_requests",
		Columns:    SessionRequestsColumns,
		PrimaryKey: []*schema.Column{SessionRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionrequest_patient_id_psychologist_id",
				Unique:  true,
				Columns: []*schema.Column{SessionRequestsColumns[2], SessionRequestsColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'pending'",
				},
			},
			{
				Name:    "sessionrequest_psychologist_id_status",
				Unique:  false,
				Columns: []*schema.Column{SessionRequestsColumns[3], SessionRequestsColumns[4]},
			},
			{
				Name:    "sessionrequest_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{SessionRequestsColumns[2], SessionRequestsColumns[4]},
			},
		},
	}
	// TagsColumns holds the columns for the "tags" table.
	TagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
	}
	// TagsTable holds the schema information for the "tags" table.
	TagsTable = &schema.Table{
		Name:       "tags",
		Columns:    TagsColumns,
		PrimaryKey: []*schema.Column{TagsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tag_name",
				Unique:  true,
				Columns: []*schema.Column{TagsColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "full_name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"patient", "psychologist"}},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		ChatsTable,
		ChatMessagesTable,
		NotificationsTable,
		PatientsTable,
		PsychologistsTable,
		PsychologistTagsTable,
		SessionRequestsTable,
		TagsTable,
		UsersTable,
	}
)

func init() {
}

// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/mindchat/mindchat_backend/internal/repo/appointment"
	"github.com/mindchat/mindchat_backend/internal/repo/chat"
	"github.com/mindchat/mindchat_backend/internal/repo/chatmessage"
	"github.com/mindchat/mindchat_backend/internal/repo/notification"
	"github.com/mindchat/mindchat_backend/internal/repo/patient"
	"github.com/mindchat/mindchat_backend/internal/repo/psychologist"
	"github.com/mindchat/mindchat_backend/internal/repo/psychologisttag"
	"github.com/mindchat/mindchat_backend/internal/repo/sessionrequest"
	"github.com/mindchat/mindchat_backend/internal/repo/tag"
	"github.com/mindchat/mindchat_backend/internal/repo/user"
	"github.com/mindchat/mindchat_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescIsCancelled is the schema descriptor for is_cancelled field.
	appointmentDescIsCancelled := appointmentFields[4].Descriptor()
	// appointment.DefaultIsCancelled holds the default value on creation for the is_cancelled field.
	appointment.DefaultIsCancelled = appointmentDescIsCancelled.Default.(bool)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	chatMixin := schema.Chat{}.Mixin()
	chatMixinFields0 := chatMixin[0].Fields()
	_ = chatMixinFields0
	chatMixinFields1 := chatMixin[1].Fields()
	_ = chatMixinFields1
	chatFields := schema.Chat{}.Fields()
	_ = chatFields
	// chatDescCreatedAt is the schema descriptor for created_at field.
	chatDescCreatedAt := chatMixinFields1[0].Descriptor()
	// chat.DefaultCreatedAt holds the default value on creation for the created_at field.
	chat.DefaultCreatedAt = chatDescCreatedAt.Default.(func() time.Time)
	// chatDescIsClosed is the schema descriptor for is_closed field.
	chatDescIsClosed := chatFields[1].Descriptor()
	// chat.DefaultIsClosed holds the default value on creation for the is_closed field.
	chat.DefaultIsClosed = chatDescIsClosed.Default.(bool)
	// chatDescID is the schema descriptor for id field.
	chatDescID := chatMixinFields0[0].Descriptor()
	// chat.DefaultID holds the default value on creation for the id field.
	chat.DefaultID = chatDescID.Default.(func() uuid.UUID)
	chatmessageMixin := schema.ChatMessage{}.Mixin()
	chatmessageMixinFields0 := chatmessageMixin[0].Fields()
	_ = chatmessageMixinFields0
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescSentAt is the schema descriptor for sent_at field.
	chatmessageDescSentAt := chatmessageFields[3].Descriptor()
	// chatmessage.DefaultSentAt holds the default value on creation for the sent_at field.
	chatmessage.DefaultSentAt = chatmessageDescSentAt.Default.(func() time.Time)
	// chatmessageDescID is the schema descriptor for id field.
	chatmessageDescID := chatmessageMixinFields0[0].Descriptor()
	// chatmessage.DefaultID holds the default value on creation for the id field.
	chatmessage.DefaultID = chatmessageDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescType is the schema descriptor for type field.
	notificationDescType := notificationFields[1].Descriptor()
	// notification.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	notification.TypeValidator = notificationDescType.Validators[0].(func(string) error)
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[4].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	psychologistMixin := schema.Psychologist{}.Mixin()
	psychologistMixinFields0 := psychologistMixin[0].Fields()
	_ = psychologistMixinFields0
	psychologistMixinFields1 := psychologistMixin[1].Fields()
	_ = psychologistMixinFields1
	psychologistFields := schema.Psychologist{}.Fields()
	_ = psychologistFields
	// psychologistDescCreatedAt is the schema descriptor for created_at field.
	psychologistDescCreatedAt := psychologistMixinFields1[0].Descriptor()
	// psychologist.DefaultCreatedAt holds the default value on creation for the created_at field.
	psychologist.DefaultCreatedAt = psychologistDescCreatedAt.Default.(func() time.Time)
	// psychologistDescUpdatedAt is the schema descriptor for updated_at field.
	psychologistDescUpdatedAt := psychologistMixinFields1[1].Descriptor()
	// psychologist.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	psychologist.DefaultUpdatedAt = psychologistDescUpdatedAt.Default.(func() time.Time)
	// psychologist.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	psychologist.UpdateDefaultUpdatedAt = psychologistDescUpdatedAt.UpdateDefault.(func() time.Time)
	// psychologistDescIsProfileVisible is the schema descriptor for is_profile_visible field.
	psychologistDescIsProfileVisible := psychologistFields[1].Descriptor()
	// psychologist.DefaultIsProfileVisible holds the default value on creation for the is_profile_visible field.
	psychologist.DefaultIsProfileVisible = psychologistDescIsProfileVisible.Default.(bool)
	// psychologistDescProfessionalLicense is the schema descriptor for professional_license field.
	psychologistDescProfessionalLicense := psychologistFields[2].Descriptor()
	// psychologist.ProfessionalLicenseValidator is a validator for the "professional_license" field. It is called by the builders before save.
	psychologist.ProfessionalLicenseValidator = psychologistDescProfessionalLicense.Validators[0].(func(string) error)
	// psychologistDescID is the schema descriptor for id field.
	psychologistDescID := psychologistMixinFields0[0].Descriptor()
	// psychologist.DefaultID holds the default value on creation for the id field.
	psychologist.DefaultID = psychologistDescID.Default.(func() uuid.UUID)
	psychologisttagMixin := schema.PsychologistTag{}.Mixin()
	psychologisttagMixinFields0 := psychologisttagMixin[0].Fields()
	_ = psychologisttagMixinFields0
	psychologisttagFields := schema.PsychologistTag{}.Fields()
	_ = psychologisttagFields
	// psychologisttagDescID is the schema descriptor for id field.
	psychologisttagDescID := psychologisttagMixinFields0[0].Descriptor()
	// psychologisttag.DefaultID holds the default value on creation for the id field.
	psychologisttag.DefaultID = psychologisttagDescID.Default.(func() uuid.UUID)
	sessionrequestMixin := schema.SessionRequest{}.Mixin()
	sessionrequestMixinFields0 := sessionrequestMixin[0].Fields()
	_ = sessionrequestMixinFields0
	sessionrequestMixinFields1 := sessionrequestMixin[1].Fields()
	_ = sessionrequestMixinFields1
	sessionrequestFields := schema.SessionRequest{}.Fields()
	_ = sessionrequestFields
	// sessionrequestDescCreatedAt is the schema descriptor for created_at field.
	sessionrequestDescCreatedAt := sessionrequestMixinFields1[0].Descriptor()
	// sessionrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionrequest.DefaultCreatedAt = sessionrequestDescCreatedAt.Default.(func() time.Time)
	// sessionrequestDescID is the schema descriptor for id field.
	sessionrequestDescID := sessionrequestMixinFields0[0].Descriptor()
	// sessionrequest.DefaultID holds the default value on creation for the id field.
	sessionrequest.DefaultID = sessionrequestDescID.Default.(func() uuid.UUID)
	tagMixin := schema.Tag{}.Mixin()
	tagMixinFields0 := tagMixin[0].Fields()
	_ = tagMixinFields0
	tagFields := schema.Tag{}.Fields()
	_ = tagFields
	// tagDescName is the schema descriptor for name field.
	tagDescName := tagFields[0].Descriptor()
	// tag.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tag.NameValidator = tagDescName.Validators[0].(func(string) error)
	// tagDescID is the schema descriptor for id field.
	tagDescID := tagMixinFields0[0].Descriptor()
	// tag.DefaultID holds the default value on creation for the id field.
	tag.DefaultID = tagDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFullName is the schema descriptor for full_name field.
	userDescFullName := userFields[0].Descriptor()
	// user.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	user.FullNameValidator = userDescFullName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}

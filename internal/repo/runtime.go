// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/nutrivida/nutrivida_backend/internal/repo/anamnesis"
	"github.com/nutrivida/nutrivida_backend/internal/repo/appointment"
	"github.com/nutrivida/nutrivida_backend/internal/repo/appsetting"
	"github.com/nutrivida/nutrivida_backend/internal/repo/availabilitywindow"
	"github.com/nutrivida/nutrivida_backend/internal/repo/conversation"
	"github.com/nutrivida/nutrivida_backend/internal/repo/diaryentry"
	"github.com/nutrivida/nutrivida_backend/internal/repo/earnedpin"
	"github.com/nutrivida/nutrivida_backend/internal/repo/gamificationstate"
	"github.com/nutrivida/nutrivida_backend/internal/repo/habit"
	"github.com/nutrivida/nutrivida_backend/internal/repo/habitcheck"
	"github.com/nutrivida/nutrivida_backend/internal/repo/hydrationlog"
	"github.com/nutrivida/nutrivida_backend/internal/repo/message"
	"github.com/nutrivida/nutrivida_backend/internal/repo/notification"
	"github.com/nutrivida/nutrivida_backend/internal/repo/post"
	"github.com/nutrivida/nutrivida_backend/internal/repo/postreaction"
	"github.com/nutrivida/nutrivida_backend/internal/repo/user"
	"github.com/nutrivida/nutrivida_backend/internal/repo/usersession"
	"github.com/nutrivida/nutrivida_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	anamnesisMixin := schema.Anamnesis{}.Mixin()
	anamnesisMixinFields0 := anamnesisMixin[0].Fields()
	_ = anamnesisMixinFields0
	anamnesisMixinFields1 := anamnesisMixin[1].Fields()
	_ = anamnesisMixinFields1
	anamnesisFields := schema.Anamnesis{}.Fields()
	_ = anamnesisFields
	// anamnesisDescCreatedAt is the schema descriptor for created_at field.
	anamnesisDescCreatedAt := anamnesisMixinFields1[0].Descriptor()
	// anamnesis.DefaultCreatedAt holds the default value on creation for the created_at field.
	anamnesis.DefaultCreatedAt = anamnesisDescCreatedAt.Default.(func() time.Time)
	// anamnesisDescUpdatedAt is the schema descriptor for updated_at field.
	anamnesisDescUpdatedAt := anamnesisMixinFields1[1].Descriptor()
	// anamnesis.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	anamnesis.DefaultUpdatedAt = anamnesisDescUpdatedAt.Default.(func() time.Time)
	// anamnesis.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	anamnesis.UpdateDefaultUpdatedAt = anamnesisDescUpdatedAt.UpdateDefault.(func() time.Time)
	// anamnesisDescID is the schema descriptor for id field.
	anamnesisDescID := anamnesisMixinFields0[0].Descriptor()
	// anamnesis.DefaultID holds the default value on creation for the id field.
	anamnesis.DefaultID = anamnesisDescID.Default.(func() uuid.UUID)
	appsettingMixin := schema.AppSetting{}.Mixin()
	appsettingMixinFields0 := appsettingMixin[0].Fields()
	_ = appsettingMixinFields0
	appsettingMixinFields1 := appsettingMixin[1].Fields()
	_ = appsettingMixinFields1
	appsettingFields := schema.AppSetting{}.Fields()
	_ = appsettingFields
	// appsettingDescCreatedAt is the schema descriptor for created_at field.
	appsettingDescCreatedAt := appsettingMixinFields1[0].Descriptor()
	// appsetting.DefaultCreatedAt holds the default value on creation for the created_at field.
	appsetting.DefaultCreatedAt = appsettingDescCreatedAt.Default.(func() time.Time)
	// appsettingDescUpdatedAt is the schema descriptor for updated_at field.
	appsettingDescUpdatedAt := appsettingMixinFields1[1].Descriptor()
	// appsetting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appsetting.DefaultUpdatedAt = appsettingDescUpdatedAt.Default.(func() time.Time)
	// appsetting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appsetting.UpdateDefaultUpdatedAt = appsettingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appsettingDescKey is the schema descriptor for key field.
	appsettingDescKey := appsettingFields[0].Descriptor()
	// appsetting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	appsetting.KeyValidator = func() func(string) error {
		validators := appsettingDescKey.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(key string) error {
			for _, fn := range fns {
				if err := fn(key); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// appsettingDescID is the schema descriptor for id field.
	appsettingDescID := appsettingMixinFields0[0].Descriptor()
	// appsetting.DefaultID holds the default value on creation for the id field.
	appsetting.DefaultID = appsettingDescID.Default.(func() uuid.UUID)
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
	// appointmentDescPatientName is the schema descriptor for patient_name field.
	appointmentDescPatientName := appointmentFields[1].Descriptor()
	// appointment.PatientNameValidator is a validator for the "patient_name" field. It is called by the builders before save.
	appointment.PatientNameValidator = appointmentDescPatientName.Validators[0].(func(string) error)
	// appointmentDescPatientEmail is the schema descriptor for patient_email field.
	appointmentDescPatientEmail := appointmentFields[2].Descriptor()
	// appointment.PatientEmailValidator is a validator for the "patient_email" field. It is called by the builders before save.
	appointment.PatientEmailValidator = appointmentDescPatientEmail.Validators[0].(func(string) error)
	// appointmentDescDurationMinutes is the schema descriptor for duration_minutes field.
	appointmentDescDurationMinutes := appointmentFields[4].Descriptor()
	// appointment.DefaultDurationMinutes holds the default value on creation for the duration_minutes field.
	appointment.DefaultDurationMinutes = appointmentDescDurationMinutes.Default.(int)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	availabilitywindowMixin := schema.AvailabilityWindow{}.Mixin()
	availabilitywindowMixinFields0 := availabilitywindowMixin[0].Fields()
	_ = availabilitywindowMixinFields0
	availabilitywindowMixinFields1 := availabilitywindowMixin[1].Fields()
	_ = availabilitywindowMixinFields1
	availabilitywindowFields := schema.AvailabilityWindow{}.Fields()
	_ = availabilitywindowFields
	// availabilitywindowDescCreatedAt is the schema descriptor for created_at field.
	availabilitywindowDescCreatedAt := availabilitywindowMixinFields1[0].Descriptor()
	// availabilitywindow.DefaultCreatedAt holds the default value on creation for the created_at field.
	availabilitywindow.DefaultCreatedAt = availabilitywindowDescCreatedAt.Default.(func() time.Time)
	// availabilitywindowDescUpdatedAt is the schema descriptor for updated_at field.
	availabilitywindowDescUpdatedAt := availabilitywindowMixinFields1[1].Descriptor()
	// availabilitywindow.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	availabilitywindow.DefaultUpdatedAt = availabilitywindowDescUpdatedAt.Default.(func() time.Time)
	// availabilitywindow.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	availabilitywindow.UpdateDefaultUpdatedAt = availabilitywindowDescUpdatedAt.UpdateDefault.(func() time.Time)
	// availabilitywindowDescDate is the schema descriptor for date field.
	availabilitywindowDescDate := availabilitywindowFields[0].Descriptor()
	// availabilitywindow.DateValidator is a validator for the "date" field. It is called by the builders before save.
	availabilitywindow.DateValidator = func() func(string) error {
		validators := availabilitywindowDescDate.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(date string) error {
			for _, fn := range fns {
				if err := fn(date); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// availabilitywindowDescID is the schema descriptor for id field.
	availabilitywindowDescID := availabilitywindowMixinFields0[0].Descriptor()
	// availabilitywindow.DefaultID holds the default value on creation for the id field.
	availabilitywindow.DefaultID = availabilitywindowDescID.Default.(func() uuid.UUID)
	conversationMixin := schema.Conversation{}.Mixin()
	conversationMixinFields0 := conversationMixin[0].Fields()
	_ = conversationMixinFields0
	conversationMixinFields1 := conversationMixin[1].Fields()
	_ = conversationMixinFields1
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationMixinFields1[0].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescID is the schema descriptor for id field.
	conversationDescID := conversationMixinFields0[0].Descriptor()
	// conversation.DefaultID holds the default value on creation for the id field.
	conversation.DefaultID = conversationDescID.Default.(func() uuid.UUID)
	diaryentryMixin := schema.DiaryEntry{}.Mixin()
	diaryentryMixinFields0 := diaryentryMixin[0].Fields()
	_ = diaryentryMixinFields0
	diaryentryMixinFields1 := diaryentryMixin[1].Fields()
	_ = diaryentryMixinFields1
	diaryentryFields := schema.DiaryEntry{}.Fields()
	_ = diaryentryFields
	// diaryentryDescCreatedAt is the schema descriptor for created_at field.
	diaryentryDescCreatedAt := diaryentryMixinFields1[0].Descriptor()
	// diaryentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	diaryentry.DefaultCreatedAt = diaryentryDescCreatedAt.Default.(func() time.Time)
	// diaryentryDescUpdatedAt is the schema descriptor for updated_at field.
	diaryentryDescUpdatedAt := diaryentryMixinFields1[1].Descriptor()
	// diaryentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	diaryentry.DefaultUpdatedAt = diaryentryDescUpdatedAt.Default.(func() time.Time)
	// diaryentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	diaryentry.UpdateDefaultUpdatedAt = diaryentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// diaryentryDescDay is the schema descriptor for day field.
	diaryentryDescDay := diaryentryFields[1].Descriptor()
	// diaryentry.DayValidator is a validator for the "day" field. It is called by the builders before save.
	diaryentry.DayValidator = func() func(string) error {
		validators := diaryentryDescDay.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(day string) error {
			for _, fn := range fns {
				if err := fn(day); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// diaryentryDescDescription is the schema descriptor for description field.
	diaryentryDescDescription := diaryentryFields[3].Descriptor()
	// diaryentry.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	diaryentry.DescriptionValidator = diaryentryDescDescription.Validators[0].(func(string) error)
	// diaryentryDescID is the schema descriptor for id field.
	diaryentryDescID := diaryentryMixinFields0[0].Descriptor()
	// diaryentry.DefaultID holds the default value on creation for the id field.
	diaryentry.DefaultID = diaryentryDescID.Default.(func() uuid.UUID)
	earnedpinMixin := schema.EarnedPin{}.Mixin()
	earnedpinMixinFields0 := earnedpinMixin[0].Fields()
	_ = earnedpinMixinFields0
	earnedpinMixinFields1 := earnedpinMixin[1].Fields()
	_ = earnedpinMixinFields1
	earnedpinFields := schema.EarnedPin{}.Fields()
	_ = earnedpinFields
	// earnedpinDescCreatedAt is the schema descriptor for created_at field.
	earnedpinDescCreatedAt := earnedpinMixinFields1[0].Descriptor()
	// earnedpin.DefaultCreatedAt holds the default value on creation for the created_at field.
	earnedpin.DefaultCreatedAt = earnedpinDescCreatedAt.Default.(func() time.Time)
	// earnedpinDescTierName is the schema descriptor for tier_name field.
	earnedpinDescTierName := earnedpinFields[1].Descriptor()
	// earnedpin.TierNameValidator is a validator for the "tier_name" field. It is called by the builders before save.
	earnedpin.TierNameValidator = func() func(string) error {
		validators := earnedpinDescTierName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(tier_name string) error {
			for _, fn := range fns {
				if err := fn(tier_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// earnedpinDescID is the schema descriptor for id field.
	earnedpinDescID := earnedpinMixinFields0[0].Descriptor()
	// earnedpin.DefaultID holds the default value on creation for the id field.
	earnedpin.DefaultID = earnedpinDescID.Default.(func() uuid.UUID)
	gamificationstateMixin := schema.GamificationState{}.Mixin()
	gamificationstateMixinFields0 := gamificationstateMixin[0].Fields()
	_ = gamificationstateMixinFields0
	gamificationstateMixinFields1 := gamificationstateMixin[1].Fields()
	_ = gamificationstateMixinFields1
	gamificationstateFields := schema.GamificationState{}.Fields()
	_ = gamificationstateFields
	// gamificationstateDescCreatedAt is the schema descriptor for created_at field.
	gamificationstateDescCreatedAt := gamificationstateMixinFields1[0].Descriptor()
	// gamificationstate.DefaultCreatedAt holds the default value on creation for the created_at field.
	gamificationstate.DefaultCreatedAt = gamificationstateDescCreatedAt.Default.(func() time.Time)
	// gamificationstateDescUpdatedAt is the schema descriptor for updated_at field.
	gamificationstateDescUpdatedAt := gamificationstateMixinFields1[1].Descriptor()
	// gamificationstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	gamificationstate.DefaultUpdatedAt = gamificationstateDescUpdatedAt.Default.(func() time.Time)
	// gamificationstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	gamificationstate.UpdateDefaultUpdatedAt = gamificationstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// gamificationstateDescTotalGoalMetDays is the schema descriptor for total_goal_met_days field.
	gamificationstateDescTotalGoalMetDays := gamificationstateFields[1].Descriptor()
	// gamificationstate.DefaultTotalGoalMetDays holds the default value on creation for the total_goal_met_days field.
	gamificationstate.DefaultTotalGoalMetDays = gamificationstateDescTotalGoalMetDays.Default.(int)
	// gamificationstate.TotalGoalMetDaysValidator is a validator for the "total_goal_met_days" field. It is called by the builders before save.
	gamificationstate.TotalGoalMetDaysValidator = gamificationstateDescTotalGoalMetDays.Validators[0].(func(int) error)
	// gamificationstateDescWeekKey is the schema descriptor for week_key field.
	gamificationstateDescWeekKey := gamificationstateFields[2].Descriptor()
	// gamificationstate.DefaultWeekKey holds the default value on creation for the week_key field.
	gamificationstate.DefaultWeekKey = gamificationstateDescWeekKey.Default.(string)
	// gamificationstate.WeekKeyValidator is a validator for the "week_key" field. It is called by the builders before save.
	gamificationstate.WeekKeyValidator = gamificationstateDescWeekKey.Validators[0].(func(string) error)
	// gamificationstateDescWeeklyStreakCount is the schema descriptor for weekly_streak_count field.
	gamificationstateDescWeeklyStreakCount := gamificationstateFields[3].Descriptor()
	// gamificationstate.DefaultWeeklyStreakCount holds the default value on creation for the weekly_streak_count field.
	gamificationstate.DefaultWeeklyStreakCount = gamificationstateDescWeeklyStreakCount.Default.(int)
	// gamificationstate.WeeklyStreakCountValidator is a validator for the "weekly_streak_count" field. It is called by the builders before save.
	gamificationstate.WeeklyStreakCountValidator = gamificationstateDescWeeklyStreakCount.Validators[0].(func(int) error)
	// gamificationstateDescTotalTaskTiersCompleted is the schema descriptor for total_task_tiers_completed field.
	gamificationstateDescTotalTaskTiersCompleted := gamificationstateFields[4].Descriptor()
	// gamificationstate.DefaultTotalTaskTiersCompleted holds the default value on creation for the total_task_tiers_completed field.
	gamificationstate.DefaultTotalTaskTiersCompleted = gamificationstateDescTotalTaskTiersCompleted.Default.(int)
	// gamificationstate.TotalTaskTiersCompletedValidator is a validator for the "total_task_tiers_completed" field. It is called by the builders before save.
	gamificationstate.TotalTaskTiersCompletedValidator = gamificationstateDescTotalTaskTiersCompleted.Validators[0].(func(int) error)
	// gamificationstateDescAllDoneDay is the schema descriptor for all_done_day field.
	gamificationstateDescAllDoneDay := gamificationstateFields[5].Descriptor()
	// gamificationstate.DefaultAllDoneDay holds the default value on creation for the all_done_day field.
	gamificationstate.DefaultAllDoneDay = gamificationstateDescAllDoneDay.Default.(string)
	// gamificationstate.AllDoneDayValidator is a validator for the "all_done_day" field. It is called by the builders before save.
	gamificationstate.AllDoneDayValidator = gamificationstateDescAllDoneDay.Validators[0].(func(string) error)
	// gamificationstateDescID is the schema descriptor for id field.
	gamificationstateDescID := gamificationstateMixinFields0[0].Descriptor()
	// gamificationstate.DefaultID holds the default value on creation for the id field.
	gamificationstate.DefaultID = gamificationstateDescID.Default.(func() uuid.UUID)
	habitMixin := schema.Habit{}.Mixin()
	habitMixinFields0 := habitMixin[0].Fields()
	_ = habitMixinFields0
	habitMixinFields1 := habitMixin[1].Fields()
	_ = habitMixinFields1
	habitFields := schema.Habit{}.Fields()
	_ = habitFields
	// habitDescCreatedAt is the schema descriptor for created_at field.
	habitDescCreatedAt := habitMixinFields1[0].Descriptor()
	// habit.DefaultCreatedAt holds the default value on creation for the created_at field.
	habit.DefaultCreatedAt = habitDescCreatedAt.Default.(func() time.Time)
	// habitDescUpdatedAt is the schema descriptor for updated_at field.
	habitDescUpdatedAt := habitMixinFields1[1].Descriptor()
	// habit.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	habit.DefaultUpdatedAt = habitDescUpdatedAt.Default.(func() time.Time)
	// habit.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	habit.UpdateDefaultUpdatedAt = habitDescUpdatedAt.UpdateDefault.(func() time.Time)
	// habitDescTitle is the schema descriptor for title field.
	habitDescTitle := habitFields[0].Descriptor()
	// habit.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	habit.TitleValidator = func() func(string) error {
		validators := habitDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// habitDescPosition is the schema descriptor for position field.
	habitDescPosition := habitFields[2].Descriptor()
	// habit.DefaultPosition holds the default value on creation for the position field.
	habit.DefaultPosition = habitDescPosition.Default.(int)
	// habitDescIsActive is the schema descriptor for is_active field.
	habitDescIsActive := habitFields[3].Descriptor()
	// habit.DefaultIsActive holds the default value on creation for the is_active field.
	habit.DefaultIsActive = habitDescIsActive.Default.(bool)
	// habitDescID is the schema descriptor for id field.
	habitDescID := habitMixinFields0[0].Descriptor()
	// habit.DefaultID holds the default value on creation for the id field.
	habit.DefaultID = habitDescID.Default.(func() uuid.UUID)
	habitcheckMixin := schema.HabitCheck{}.Mixin()
	habitcheckMixinFields0 := habitcheckMixin[0].Fields()
	_ = habitcheckMixinFields0
	habitcheckMixinFields1 := habitcheckMixin[1].Fields()
	_ = habitcheckMixinFields1
	habitcheckFields := schema.HabitCheck{}.Fields()
	_ = habitcheckFields
	// habitcheckDescCreatedAt is the schema descriptor for created_at field.
	habitcheckDescCreatedAt := habitcheckMixinFields1[0].Descriptor()
	// habitcheck.DefaultCreatedAt holds the default value on creation for the created_at field.
	habitcheck.DefaultCreatedAt = habitcheckDescCreatedAt.Default.(func() time.Time)
	// habitcheckDescDay is the schema descriptor for day field.
	habitcheckDescDay := habitcheckFields[2].Descriptor()
	// habitcheck.DayValidator is a validator for the "day" field. It is called by the builders before save.
	habitcheck.DayValidator = func() func(string) error {
		validators := habitcheckDescDay.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(day string) error {
			for _, fn := range fns {
				if err := fn(day); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// habitcheckDescID is the schema descriptor for id field.
	habitcheckDescID := habitcheckMixinFields0[0].Descriptor()
	// habitcheck.DefaultID holds the default value on creation for the id field.
	habitcheck.DefaultID = habitcheckDescID.Default.(func() uuid.UUID)
	hydrationlogMixin := schema.HydrationLog{}.Mixin()
	hydrationlogMixinFields0 := hydrationlogMixin[0].Fields()
	_ = hydrationlogMixinFields0
	hydrationlogMixinFields1 := hydrationlogMixin[1].Fields()
	_ = hydrationlogMixinFields1
	hydrationlogFields := schema.HydrationLog{}.Fields()
	_ = hydrationlogFields
	// hydrationlogDescCreatedAt is the schema descriptor for created_at field.
	hydrationlogDescCreatedAt := hydrationlogMixinFields1[0].Descriptor()
	// hydrationlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	hydrationlog.DefaultCreatedAt = hydrationlogDescCreatedAt.Default.(func() time.Time)
	// hydrationlogDescUpdatedAt is the schema descriptor for updated_at field.
	hydrationlogDescUpdatedAt := hydrationlogMixinFields1[1].Descriptor()
	// hydrationlog.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	hydrationlog.DefaultUpdatedAt = hydrationlogDescUpdatedAt.Default.(func() time.Time)
	// hydrationlog.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	hydrationlog.UpdateDefaultUpdatedAt = hydrationlogDescUpdatedAt.UpdateDefault.(func() time.Time)
	// hydrationlogDescDay is the schema descriptor for day field.
	hydrationlogDescDay := hydrationlogFields[1].Descriptor()
	// hydrationlog.DayValidator is a validator for the "day" field. It is called by the builders before save.
	hydrationlog.DayValidator = func() func(string) error {
		validators := hydrationlogDescDay.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(day string) error {
			for _, fn := range fns {
				if err := fn(day); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// hydrationlogDescIntakeMl is the schema descriptor for intake_ml field.
	hydrationlogDescIntakeMl := hydrationlogFields[2].Descriptor()
	// hydrationlog.DefaultIntakeMl holds the default value on creation for the intake_ml field.
	hydrationlog.DefaultIntakeMl = hydrationlogDescIntakeMl.Default.(int)
	// hydrationlog.IntakeMlValidator is a validator for the "intake_ml" field. It is called by the builders before save.
	hydrationlog.IntakeMlValidator = hydrationlogDescIntakeMl.Validators[0].(func(int) error)
	// hydrationlogDescGoalMl is the schema descriptor for goal_ml field.
	hydrationlogDescGoalMl := hydrationlogFields[3].Descriptor()
	// hydrationlog.GoalMlValidator is a validator for the "goal_ml" field. It is called by the builders before save.
	hydrationlog.GoalMlValidator = hydrationlogDescGoalMl.Validators[0].(func(int) error)
	// hydrationlogDescGoalMet is the schema descriptor for goal_met field.
	hydrationlogDescGoalMet := hydrationlogFields[4].Descriptor()
	// hydrationlog.DefaultGoalMet holds the default value on creation for the goal_met field.
	hydrationlog.DefaultGoalMet = hydrationlogDescGoalMet.Default.(bool)
	// hydrationlogDescID is the schema descriptor for id field.
	hydrationlogDescID := hydrationlogMixinFields0[0].Descriptor()
	// hydrationlog.DefaultID holds the default value on creation for the id field.
	hydrationlog.DefaultID = hydrationlogDescID.Default.(func() uuid.UUID)
	messageMixin := schema.Message{}.Mixin()
	messageMixinFields0 := messageMixin[0].Fields()
	_ = messageMixinFields0
	messageMixinFields1 := messageMixin[1].Fields()
	_ = messageMixinFields1
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageMixinFields1[0].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	// messageDescIsRead is the schema descriptor for is_read field.
	messageDescIsRead := messageFields[4].Descriptor()
	// message.DefaultIsRead holds the default value on creation for the is_read field.
	message.DefaultIsRead = messageDescIsRead.Default.(bool)
	// messageDescID is the schema descriptor for id field.
	messageDescID := messageMixinFields0[0].Descriptor()
	// message.DefaultID holds the default value on creation for the id field.
	message.DefaultID = messageDescID.Default.(func() uuid.UUID)
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
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[5].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	postMixin := schema.Post{}.Mixin()
	postMixinFields0 := postMixin[0].Fields()
	_ = postMixinFields0
	postMixinFields1 := postMixin[1].Fields()
	_ = postMixinFields1
	postFields := schema.Post{}.Fields()
	_ = postFields
	// postDescCreatedAt is the schema descriptor for created_at field.
	postDescCreatedAt := postMixinFields1[0].Descriptor()
	// post.DefaultCreatedAt holds the default value on creation for the created_at field.
	post.DefaultCreatedAt = postDescCreatedAt.Default.(func() time.Time)
	// postDescUpdatedAt is the schema descriptor for updated_at field.
	postDescUpdatedAt := postMixinFields1[1].Descriptor()
	// post.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	post.DefaultUpdatedAt = postDescUpdatedAt.Default.(func() time.Time)
	// post.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	post.UpdateDefaultUpdatedAt = postDescUpdatedAt.UpdateDefault.(func() time.Time)
	// postDescContent is the schema descriptor for content field.
	postDescContent := postFields[1].Descriptor()
	// post.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	post.ContentValidator = postDescContent.Validators[0].(func(string) error)
	// postDescLikeCount is the schema descriptor for like_count field.
	postDescLikeCount := postFields[3].Descriptor()
	// post.DefaultLikeCount holds the default value on creation for the like_count field.
	post.DefaultLikeCount = postDescLikeCount.Default.(int)
	// post.LikeCountValidator is a validator for the "like_count" field. It is called by the builders before save.
	post.LikeCountValidator = postDescLikeCount.Validators[0].(func(int) error)
	// postDescID is the schema descriptor for id field.
	postDescID := postMixinFields0[0].Descriptor()
	// post.DefaultID holds the default value on creation for the id field.
	post.DefaultID = postDescID.Default.(func() uuid.UUID)
	postreactionMixin := schema.PostReaction{}.Mixin()
	postreactionMixinFields0 := postreactionMixin[0].Fields()
	_ = postreactionMixinFields0
	postreactionMixinFields1 := postreactionMixin[1].Fields()
	_ = postreactionMixinFields1
	postreactionFields := schema.PostReaction{}.Fields()
	_ = postreactionFields
	// postreactionDescCreatedAt is the schema descriptor for created_at field.
	postreactionDescCreatedAt := postreactionMixinFields1[0].Descriptor()
	// postreaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	postreaction.DefaultCreatedAt = postreactionDescCreatedAt.Default.(func() time.Time)
	// postreactionDescID is the schema descriptor for id field.
	postreactionDescID := postreactionMixinFields0[0].Descriptor()
	// postreaction.DefaultID holds the default value on creation for the id field.
	postreaction.DefaultID = postreactionDescID.Default.(func() uuid.UUID)
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
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[0].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[1].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	usersessionMixin := schema.UserSession{}.Mixin()
	usersessionMixinFields0 := usersessionMixin[0].Fields()
	_ = usersessionMixinFields0
	usersessionMixinFields1 := usersessionMixin[1].Fields()
	_ = usersessionMixinFields1
	usersessionFields := schema.UserSession{}.Fields()
	_ = usersessionFields
	// usersessionDescCreatedAt is the schema descriptor for created_at field.
	usersessionDescCreatedAt := usersessionMixinFields1[0].Descriptor()
	// usersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	usersession.DefaultCreatedAt = usersessionDescCreatedAt.Default.(func() time.Time)
	// usersessionDescUpdatedAt is the schema descriptor for updated_at field.
	usersessionDescUpdatedAt := usersessionMixinFields1[1].Descriptor()
	// usersession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usersession.DefaultUpdatedAt = usersessionDescUpdatedAt.Default.(func() time.Time)
	// usersession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usersession.UpdateDefaultUpdatedAt = usersessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usersessionDescSessionID is the schema descriptor for session_id field.
	usersessionDescSessionID := usersessionFields[1].Descriptor()
	// usersession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	usersession.SessionIDValidator = func() func(string) error {
		validators := usersessionDescSessionID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(session_id string) error {
			for _, fn := range fns {
				if err := fn(session_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usersessionDescRefreshTokenHash is the schema descriptor for refresh_token_hash field.
	usersessionDescRefreshTokenHash := usersessionFields[2].Descriptor()
	// usersession.RefreshTokenHashValidator is a validator for the "refresh_token_hash" field. It is called by the builders before save.
	usersession.RefreshTokenHashValidator = usersessionDescRefreshTokenHash.Validators[0].(func(string) error)
	// usersessionDescIPAddress is the schema descriptor for ip_address field.
	usersessionDescIPAddress := usersessionFields[4].Descriptor()
	// usersession.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	usersession.IPAddressValidator = usersessionDescIPAddress.Validators[0].(func(string) error)
	// usersessionDescID is the schema descriptor for id field.
	usersessionDescID := usersessionMixinFields0[0].Descriptor()
	// usersession.DefaultID holds the default value on creation for the id field.
	usersession.DefaultID = usersessionDescID.Default.(func() uuid.UUID)
}

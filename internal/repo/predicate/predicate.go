// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Anamnesis is the predicate function for anamnesis builders.
type Anamnesis func(*sql.Selector)

// AppSetting is the predicate function for appsetting builders.
type AppSetting func(*sql.Selector)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// AvailabilityWindow is the predicate function for availabilitywindow builders.
type AvailabilityWindow func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// DiaryEntry is the predicate function for diaryentry builders.
type DiaryEntry func(*sql.Selector)

// EarnedPin is the predicate function for earnedpin builders.
type EarnedPin func(*sql.Selector)

// GamificationState is the predicate function for gamificationstate builders.
type GamificationState func(*sql.Selector)

// Habit is the predicate function for habit builders.
type Habit func(*sql.Selector)

// HabitCheck is the predicate function for habitcheck builders.
type HabitCheck func(*sql.Selector)

// HydrationLog is the predicate function for hydrationlog builders.
type HydrationLog func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Post is the predicate function for post builders.
type Post func(*sql.Selector)

// PostReaction is the predicate function for postreaction builders.
type PostReaction func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserSession is the predicate function for usersession builders.
type UserSession func(*sql.Selector)

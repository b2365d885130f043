// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jaemin/econquiz/ent/attemptevent"
	"github.com/jaemin/econquiz/ent/requestevent"
	"github.com/jaemin/econquiz/ent/schema"
	"github.com/jaemin/econquiz/ent/stagedset"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[0].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescDurationSecs is the schema descriptor for duration_secs field.
	attempteventDescDurationSecs := attempteventFields[5].Descriptor()
	// attemptevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	attemptevent.DefaultDurationSecs = attempteventDescDurationSecs.Default.(int)
	// attempteventDescSource is the schema descriptor for source field.
	attempteventDescSource := attempteventFields[6].Descriptor()
	// attemptevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	attemptevent.SourceValidator = attempteventDescSource.Validators[0].(func(string) error)
	requesteventMixin := schema.RequestEvent{}.Mixin()
	requesteventMixinFields0 := requesteventMixin[0].Fields()
	_ = requesteventMixinFields0
	requesteventFields := schema.RequestEvent{}.Fields()
	_ = requesteventFields
	// requesteventDescTimestamp is the schema descriptor for timestamp field.
	requesteventDescTimestamp := requesteventMixinFields0[1].Descriptor()
	// requestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	requestevent.DefaultTimestamp = requesteventDescTimestamp.Default.(func() time.Time)
	// requesteventDescMethod is the schema descriptor for method field.
	requesteventDescMethod := requesteventFields[0].Descriptor()
	// requestevent.MethodValidator is a validator for the "method" field. It is called by the builders before save.
	requestevent.MethodValidator = requesteventDescMethod.Validators[0].(func(string) error)
	// requesteventDescPath is the schema descriptor for path field.
	requesteventDescPath := requesteventFields[1].Descriptor()
	// requestevent.PathValidator is a validator for the "path" field. It is called by the builders before save.
	requestevent.PathValidator = requesteventDescPath.Validators[0].(func(string) error)
	// requesteventDescStatus is the schema descriptor for status field.
	requesteventDescStatus := requesteventFields[2].Descriptor()
	// requestevent.DefaultStatus holds the default value on creation for the status field.
	requestevent.DefaultStatus = requesteventDescStatus.Default.(int)
	stagedsetFields := schema.StagedSet{}.Fields()
	_ = stagedsetFields
	// stagedsetDescSetID is the schema descriptor for set_id field.
	stagedsetDescSetID := stagedsetFields[0].Descriptor()
	// stagedset.SetIDValidator is a validator for the "set_id" field. It is called by the builders before save.
	stagedset.SetIDValidator = stagedsetDescSetID.Validators[0].(func(string) error)
	// stagedsetDescSource is the schema descriptor for source field.
	stagedsetDescSource := stagedsetFields[1].Descriptor()
	// stagedset.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	stagedset.SourceValidator = stagedsetDescSource.Validators[0].(func(string) error)
	// stagedsetDescPayload is the schema descriptor for payload field.
	stagedsetDescPayload := stagedsetFields[2].Descriptor()
	// stagedset.PayloadValidator is a validator for the "payload" field. It is called by the builders before save.
	stagedset.PayloadValidator = stagedsetDescPayload.Validators[0].(func(string) error)
	// stagedsetDescCreatedAt is the schema descriptor for created_at field.
	stagedsetDescCreatedAt := stagedsetFields[3].Descriptor()
	// stagedset.DefaultCreatedAt holds the default value on creation for the created_at field.
	stagedset.DefaultCreatedAt = stagedsetDescCreatedAt.Default.(func() time.Time)
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dverney/quizine/ent/judgeevent"
	"github.com/dverney/quizine/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	judgeeventMixin := schema.JudgeEvent{}.Mixin()
	judgeeventMixinFields0 := judgeeventMixin[0].Fields()
	_ = judgeeventMixinFields0
	judgeeventFields := schema.JudgeEvent{}.Fields()
	_ = judgeeventFields
	// judgeeventDescTimestamp is the schema descriptor for timestamp field.
	judgeeventDescTimestamp := judgeeventMixinFields0[1].Descriptor()
	// judgeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	judgeevent.DefaultTimestamp = judgeeventDescTimestamp.Default.(func() time.Time)
	// judgeeventDescLanguage is the schema descriptor for language field.
	judgeeventDescLanguage := judgeeventFields[3].Descriptor()
	// judgeevent.DefaultLanguage holds the default value on creation for the language field.
	judgeevent.DefaultLanguage = judgeeventDescLanguage.Default.(string)
	// judgeeventDescScore is the schema descriptor for score field.
	judgeeventDescScore := judgeeventFields[4].Descriptor()
	// judgeevent.DefaultScore holds the default value on creation for the score field.
	judgeevent.DefaultScore = judgeeventDescScore.Default.(int)
	// judgeeventDescLatencyMs is the schema descriptor for latency_ms field.
	judgeeventDescLatencyMs := judgeeventFields[5].Descriptor()
	// judgeevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	judgeevent.DefaultLatencyMs = judgeeventDescLatencyMs.Default.(int64)
	// judgeeventDescErrorMessage is the schema descriptor for error_message field.
	judgeeventDescErrorMessage := judgeeventFields[7].Descriptor()
	// judgeevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	judgeevent.DefaultErrorMessage = judgeeventDescErrorMessage.Default.(string)
}

// Package prompt composes the deterministic generation prompts sent to the
// text-generation service.
//
// A prompt is assembled from a fixed preamble, the ordered few-shot example
// set, the caller's subject, the resolved template instruction, the optional
// context pairs, and a closing instruction that forces the exact
// "Subject/Message/Regards" response shape. Build has no side effects and no
// time- or randomness-dependence: identical inputs yield byte-identical
// prompts, which keeps the generation pipeline reproducible and testable.
package prompt

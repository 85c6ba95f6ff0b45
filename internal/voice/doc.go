// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

// Package voice normalizes pre-transcribed voice queries before parsing.
//
// There is no real speech-to-text here: input is already text, possibly
// carrying transcription artifacts. Normalize runs a fixed pipeline of
// cleanup (filler words, whitespace, punctuation), carrier-phrase payload
// extraction ("find ...", "show me ..."), and a whole-word correction
// table for commonly misheard terms. The output feeds the query parser
// as ordinary text.
package voice

// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

// Package supervisor builds the suture supervision tree for the
// service. The tree has a root supervisor, an api layer holding the
// HTTP server, and a data layer holding the event retention sweeper;
// failed services restart with suture's failure backoff, and
// supervision events flow into the global logger via sutureslog.
package supervisor

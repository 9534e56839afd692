// Package screens binds store state to individual screens: form state,
// validation, redirect-on-success and toast-on-success.
package screens

import (
	"strconv"
	"strings"
)

// Routes.
const (
	RouteLogin    = "/login"
	RouteRegister = "/register"
	RouteEvents   = "/events"
	RouteEventNew = "/events/new"
)

// RouteEventDetail is the detail view of event id.
func RouteEventDetail(id int64) string {
	return RouteEvents + "/" + strconv.FormatInt(id, 10)
}

// RouteEventEdit is the edit form of event id.
func RouteEventEdit(id int64) string {
	return RouteEventDetail(id) + "/edit"
}

// ParseEventRoute extracts the event id from a detail or edit route.
func ParseEventRoute(route string) (id int64, edit bool, ok bool) {
	rest, found := strings.CutPrefix(route, RouteEvents+"/")
	if !found {
		return 0, false, false
	}
	rest, edit = strings.CutSuffix(rest, "/edit")
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id <= 0 {
		return 0, false, false
	}
	return id, edit, true
}

// Navigator moves the front end to another route.
type Navigator interface {
	Navigate(route string)
}

// Notifier shows transient success messages.
type Notifier interface {
	Success(message string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(route string)

// Navigate implements Navigator.
func (f NavigatorFunc) Navigate(route string) { f(route) }

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

// Success implements Notifier.
func (f NotifierFunc) Success(message string) { f(message) }

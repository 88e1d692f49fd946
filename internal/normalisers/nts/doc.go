// Package nts parses decision documents served by the National Tax
// Service tax-law system (taxlaw.nts.go.kr).
//
// Some decisions listed by the open API are hosted there; the law.go.kr
// printable page redirects to it with an ntstDcmId parameter. The system
// answers an action call with a JSON envelope whose document body is
// HTML, sometimes only as an attached editor file.
package nts

// Package nts provides the connector for the National Tax Service
// tax-law system (taxlaw.nts.go.kr).
//
// Documents are looked up with a form POST to action.do naming the
// document action and a JSON parameter object carrying the document id.
package nts

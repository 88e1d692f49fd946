// Package comwel provides the connector for the industrial-accident case
// site of the Korea Workers' Compensation & Welfare Service.
//
// The open API collects these decisions with incomplete metadata. The
// case page, keyed by case number and court name, carries the missing
// decision date.
package comwel

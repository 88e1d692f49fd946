// Package comwel reads case metadata from the industrial-accident case
// site of the Korea Workers' Compensation & Welfare Service
// (sanjaecase.comwel.or.kr) and merges it into precedent records.
package comwel

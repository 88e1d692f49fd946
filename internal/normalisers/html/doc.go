// Package html turns scraped pages and HTML fragments from the court,
// tax and labour sources into sanitised HTML or plain text.
//
// Pages are decoded from their declared charset (EUC-KR pages are still
// common) before parsing, and extracted text is NFC normalised so Hangul
// compares equal regardless of how the source composed it.
package html

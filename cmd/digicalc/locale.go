package main

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

const defaultLocale = "en-US"

// detectLocale returns the user's locale from the environment.
func detectLocale() string {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Debugf("cannot detect user locale: %v", err)
		return defaultLocale
	}
	T().Debugf("detected user locale %v", userLocale)
	return userLocale
}

// localeTag returns the language tag for printing numbers. An empty name
// selects the user's locale.
func localeTag(name string) language.Tag {
	if name == "" {
		name = detectLocale()
	}
	tag, err := language.Parse(name)
	if err != nil {
		T().Errorf("invalid locale %q, using %s", name, defaultLocale)
		return language.AmericanEnglish
	}
	return tag
}

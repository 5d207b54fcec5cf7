package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

const (
	fakeUserId      = "1337"
	fakeUserLogin   = "bigjim"
	fakeDisplayName = "BigJim"
	fakeRoomId      = "953753877"
)

type lineFunc func(channel string, now time.Time) string

var lineFuncs = map[string]lineFunc{
	"privmsg": func(channel string, now time.Time) string {
		return fmt.Sprintf(
			"@badge-info=subscriber/8;badges=subscriber/6,turbo/1;color=#0D4200;display-name=%s;emotes=25:0-4;first-msg=0;id=%s;mod=0;room-id=%s;subscriber=1;tmi-sent-ts=%d;turbo=1;user-id=%s;user-type= :%s!%s@%s.tmi.twitch.tv PRIVMSG #%s :Kappa ghost of a baby seal",
			fakeDisplayName, uuid.New(), fakeRoomId, now.UnixMilli(), fakeUserId, fakeUserLogin, fakeUserLogin, fakeUserLogin, channel,
		)
	},
	"clearchat": func(channel string, now time.Time) string {
		return fmt.Sprintf(
			"@ban-duration=600;room-id=%s;target-user-id=%s;tmi-sent-ts=%d :tmi.twitch.tv CLEARCHAT #%s :%s",
			fakeRoomId, fakeUserId, now.UnixMilli(), channel, fakeUserLogin,
		)
	},
	"clearmsg": func(channel string, now time.Time) string {
		return fmt.Sprintf(
			"@login=%s;room-id=;target-msg-id=%s;tmi-sent-ts=%d :tmi.twitch.tv CLEARMSG #%s :ghost of a baby seal",
			fakeUserLogin, uuid.New(), now.UnixMilli(), channel,
		)
	},
	"usernotice-sub": func(channel string, now time.Time) string {
		return fmt.Sprintf(
			`@badge-info=subscriber/0;badges=subscriber/0,premium/1;color=;display-name=%s;emotes=;flags=;id=%s;login=%s;mod=0;msg-id=sub;msg-param-cumulative-months=1;msg-param-months=0;msg-param-multimonth-duration=1;msg-param-multimonth-tenure=0;msg-param-should-share-streak=0;msg-param-sub-plan-name=Channel\sSubscription;msg-param-sub-plan=Prime;msg-param-was-gifted=false;room-id=%s;subscriber=1;system-msg=%s\ssubscribed\swith\sPrime.;tmi-sent-ts=%d;user-id=%s;user-type= :tmi.twitch.tv USERNOTICE #%s`,
			fakeDisplayName, uuid.New(), fakeUserLogin, fakeRoomId, fakeDisplayName, now.UnixMilli(), fakeUserId, channel,
		)
	},
	"raid": func(channel string, now time.Time) string {
		return fmt.Sprintf(
			`@badge-info=;badges=;color=#FF0000;display-name=%s;emotes=;flags=;id=%s;login=%s;mod=0;msg-id=raid;msg-param-displayName=%s;msg-param-login=%s;msg-param-profileImageURL=https://static-cdn.jtvnw.net/jtv_user_pictures/default-profile_image-70x70.png;msg-param-viewerCount=15;room-id=%s;subscriber=0;system-msg=15\sraiders\sfrom\s%s\shave\sjoined!;tmi-sent-ts=%d;user-id=%s;user-type= :tmi.twitch.tv USERNOTICE #%s`,
			fakeDisplayName, uuid.New(), fakeUserLogin, fakeDisplayName, fakeUserLogin, fakeRoomId, fakeDisplayName, now.UnixMilli(), fakeUserId, channel,
		)
	},
	"whisper": func(channel string, now time.Time) string {
		return fmt.Sprintf(
			"@badges=;color=#8A2BE2;display-name=%s;emotes=;message-id=1;thread-id=%s_%s;turbo=0;user-id=%s;user-type= :%s!%s@%s.tmi.twitch.tv WHISPER %s :hello from the other side",
			fakeDisplayName, fakeUserId, fakeRoomId, fakeUserId, fakeUserLogin, fakeUserLogin, fakeUserLogin, channel,
		)
	},
	"hosttarget": func(channel string, now time.Time) string {
		return fmt.Sprintf(":tmi.twitch.tv HOSTTARGET #%s :%s 42", channel, fakeUserLogin)
	},
}

// kinds returns the names of all the kinds of line that can be simulated
func kinds() []string {
	names := make([]string, 0, len(lineFuncs))
	for name := range lineFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func buildLine(kind string, channel string, now time.Time) (string, error) {
	f, ok := lineFuncs[kind]
	if !ok {
		return "", fmt.Errorf("unsupported kind '%s'; expected one of %v", kind, kinds())
	}
	return f(channel, now), nil
}

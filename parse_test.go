package tmi

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ClearChat(t *testing.T) {
	cmd := Parse("@room-id=12345678;target-user-id=87654321;tmi-sent-ts=1642715756806 :tmi.twitch.tv CLEARCHAT #dallas :ronni", testCatalogs())
	require.IsType(t, &ClearChat{}, cmd)
	msg := cmd.(*ClearChat)

	assert.Equal(t, VerbClearChat, msg.Verb())
	assert.Equal(t, "12345678", msg.Tags.RoomID)
	assert.Equal(t, "87654321", msg.Tags.TargetUserID)
	assert.Equal(t, time.UnixMilli(1642715756806).UTC(), msg.Tags.TmiSentTs)
	assert.Nil(t, msg.Tags.BanDuration)
	assert.Equal(t, &Source{Host: "tmi.twitch.tv"}, msg.Source)
	assert.Equal(t, "dallas", msg.Channel)
	assert.Equal(t, "ronni", msg.User)
}

func TestParse_ClearChat_entireChat(t *testing.T) {
	cmd := Parse("@room-id=12345678;tmi-sent-ts=1642715695392 :tmi.twitch.tv CLEARCHAT #dallas", testCatalogs())
	require.IsType(t, &ClearChat{}, cmd)
	msg := cmd.(*ClearChat)

	assert.Equal(t, "dallas", msg.Channel)
	assert.Equal(t, "", msg.User)
	assert.Equal(t, "", msg.Tags.TargetUserID)
}

func TestParse_ClearChat_timeout(t *testing.T) {
	cmd := Parse("@ban-duration=350;room-id=12345678;target-user-id=87654321;tmi-sent-ts=1642719320727 :tmi.twitch.tv CLEARCHAT #dallas :ronni", testCatalogs())
	require.IsType(t, &ClearChat{}, cmd)
	msg := cmd.(*ClearChat)

	require.NotNil(t, msg.Tags.BanDuration)
	assert.Equal(t, 350, *msg.Tags.BanDuration)
}

func TestParse_ClearMessage(t *testing.T) {
	cmd := Parse("@login=foo;room-id=;target-msg-id=94e6c7ff-bf98-4faa-af5d-7ad633a158a9;tmi-sent-ts=1642720582342 :tmi.twitch.tv CLEARMSG #bar :what a great day", testCatalogs())
	require.IsType(t, &ClearMessage{}, cmd)
	msg := cmd.(*ClearMessage)

	assert.Equal(t, VerbClearMessage, msg.Verb())
	assert.Equal(t, "foo", msg.Tags.Login)
	assert.Equal(t, "", msg.Tags.RoomID)
	assert.False(t, msg.TagMap.Has("roomId"))
	assert.Equal(t, "94e6c7ff-bf98-4faa-af5d-7ad633a158a9", msg.Tags.TargetMsgID)
	assert.Equal(t, time.UnixMilli(1642720582342).UTC(), msg.Tags.TmiSentTs)
	assert.Equal(t, "tmi.twitch.tv", msg.Source.Host)
	assert.Equal(t, "bar", msg.Channel)
	assert.Equal(t, "what a great day", msg.Text)
}

func TestParse_GlobalUserState(t *testing.T) {
	cmd := Parse("@badge-info=subscriber/8;badges=subscriber/6;color=#0D4200;display-name=dallas;emote-sets=0,33,50,237,793,2126,3517,4578,5569,9400,10337,12239;turbo=0;user-id=12345678;user-type=admin :tmi.twitch.tv GLOBALUSERSTATE", testCatalogs())
	require.IsType(t, &GlobalUserState{}, cmd)
	msg := cmd.(*GlobalUserState)

	assert.Equal(t, VerbGlobalUserState, msg.Verb())
	assert.Equal(t, GlobalUserStateTags{
		BadgeInfo: &BadgeInfo{SubLength: 8},
		Badges: []Badge{
			{Name: "subscriber", ID: "6", Images: &globalSubscriber6},
		},
		Color:       "#0D4200",
		DisplayName: "dallas",
		EmoteSets:   "0,33,50,237,793,2126,3517,4578,5569,9400,10337,12239",
		Turbo:       false,
		UserID:      "12345678",
		UserType:    UserTypeAdmin,
	}, msg.Tags)
	assert.Equal(t, &Source{Host: "tmi.twitch.tv"}, msg.Source)
}

func TestParse_Notice(t *testing.T) {
	cmd := Parse("@msg-id=whisper_restricted;target-user-id=12345678 :tmi.twitch.tv NOTICE #bar :Your settings prevent you from sending this whisper.", testCatalogs())
	require.IsType(t, &Notice{}, cmd)
	msg := cmd.(*Notice)

	assert.Equal(t, "whisper_restricted", msg.Tags.MsgID)
	assert.Equal(t, "12345678", msg.Tags.TargetUserID)
	assert.Equal(t, "tmi.twitch.tv", msg.Source.Host)
	assert.Equal(t, "bar", msg.Channel)
	assert.Equal(t, "Your settings prevent you from sending this whisper.", msg.Text)
}

func TestParse_PrivateMessage(t *testing.T) {
	cmd := Parse("@reply-parent-msg-id=b34ccfc7-4977-403a-8a94-33c6bac34fb8;badge-info=;badges=turbo/1;color=#0D4200;display-name=ronni;emotes=25:0-4,12-16/1902:6-10;first-msg=0;id=b34ccfc7-4977-403a-8a94-33c6bac34fb8;mod=0;room-id=1337;subscriber=0;tmi-sent-ts=1507246572675;turbo=1;user-id=1337;user-type=global_mod :ronni!ronni@ronni.tmi.twitch.tv PRIVMSG #ronni :Kappa Keepo Kappa", testCatalogs())
	require.IsType(t, &PrivateMessage{}, cmd)
	msg := cmd.(*PrivateMessage)

	assert.Equal(t, VerbPrivateMessage, msg.Verb())
	assert.Nil(t, msg.Tags.BadgeInfo)
	assert.Equal(t, []Badge{{Name: "turbo", ID: "1", Images: &globalTurbo1}}, msg.Tags.Badges)
	assert.Nil(t, msg.Tags.Bits)
	assert.Equal(t, "#0D4200", msg.Tags.Color)
	assert.Equal(t, "ronni", msg.Tags.DisplayName)
	require.NotNil(t, msg.Tags.FirstMsg)
	assert.False(t, *msg.Tags.FirstMsg)
	assert.Equal(t, "b34ccfc7-4977-403a-8a94-33c6bac34fb8", msg.Tags.ReplyParentMsgID)
	assert.Equal(t, "b34ccfc7-4977-403a-8a94-33c6bac34fb8", msg.Tags.ID)
	assert.False(t, msg.Tags.Mod)
	assert.Equal(t, "1337", msg.Tags.RoomID)
	assert.False(t, msg.Tags.Subscriber)
	assert.Equal(t, time.UnixMilli(1507246572675).UTC(), msg.Tags.TmiSentTs)
	assert.True(t, msg.Tags.Turbo)
	assert.Equal(t, "1337", msg.Tags.UserID)
	assert.Equal(t, UserTypeGlobalMod, msg.Tags.UserType)
	assert.Nil(t, msg.Tags.Vip)
	assert.Equal(t, &Source{Host: "ronni.tmi.twitch.tv", UserName: "ronni"}, msg.Source)
	assert.Equal(t, "ronni", msg.Channel)
	assert.Equal(t, "Kappa Keepo Kappa", msg.Text)

	require.Len(t, msg.Tags.Emotes, 2)
	kappa, keepo := msg.Tags.Emotes[0], msg.Tags.Emotes[1]
	assert.Equal(t, "25", kappa.ID)
	require.Len(t, kappa.Usage, 2)
	assert.Equal(t, "Kappa", kappa.Usage[0].Text(msg.Text))
	assert.Equal(t, "Kappa", kappa.Usage[1].Text(msg.Text))
	assert.Equal(t, "https://static-cdn.jtvnw.net/emoticons/v2/25/default/dark/1.0", kappa.Images.X1)
	assert.Equal(t, "1902", keepo.ID)
	require.Len(t, keepo.Usage, 1)
	assert.Equal(t, "Keepo", keepo.Usage[0].Text(msg.Text))
	assert.Equal(t, "https://static-cdn.jtvnw.net/emoticons/v2/1902/default/dark/3.0", keepo.Images.X3)
}

func TestParse_PrivateMessage_cheer(t *testing.T) {
	cmd := Parse("@badge-info=subscriber/13;badges=subscriber/6,bits/100;bits=100;display-name=ronni;id=abc;vip=1 :ronni!ronni@ronni.tmi.twitch.tv PRIVMSG #dallas :cheer100 nice", testCatalogs())
	require.IsType(t, &PrivateMessage{}, cmd)
	msg := cmd.(*PrivateMessage)

	require.NotNil(t, msg.Tags.Bits)
	assert.Equal(t, 100, *msg.Tags.Bits)
	require.NotNil(t, msg.Tags.Vip)
	assert.True(t, *msg.Tags.Vip)
	assert.Equal(t, &BadgeInfo{SubLength: 13}, msg.Tags.BadgeInfo)
	assert.Equal(t, []Badge{
		{Name: "subscriber", ID: "6", Images: &channelSubscriber6, ChannelScoped: true},
		{Name: "bits", ID: "100"},
	}, msg.Tags.Badges)
	assert.Equal(t, []Emote(nil), msg.Tags.Emotes)
	assert.Equal(t, "cheer100 nice", msg.Text)
}

func TestParse_RoomState(t *testing.T) {
	cmd := Parse("@emote-only=0;followers-only=0;r9k=0;slow=0;subs-only=0 :tmi.twitch.tv ROOMSTATE #dallas", testCatalogs())
	require.IsType(t, &RoomState{}, cmd)
	msg := cmd.(*RoomState)

	f, zero := false, 0
	assert.Equal(t, RoomStateTags{
		EmoteOnly:     &f,
		FollowersOnly: &zero,
		R9K:           &f,
		Slow:          &f,
		SubsOnly:      &f,
	}, msg.Tags)
	assert.Equal(t, "dallas", msg.Channel)
}

func TestParse_RoomState_partialUpdate(t *testing.T) {
	cmd := Parse("@room-id=12345678;slow=1 :tmi.twitch.tv ROOMSTATE #dallas", testCatalogs())
	require.IsType(t, &RoomState{}, cmd)
	msg := cmd.(*RoomState)

	assert.Nil(t, msg.Tags.EmoteOnly)
	assert.Nil(t, msg.Tags.FollowersOnly)
	require.NotNil(t, msg.Tags.Slow)
	assert.True(t, *msg.Tags.Slow)
	assert.Equal(t, "12345678", msg.Tags.RoomID)
}

func TestParse_UserNotice_raid(t *testing.T) {
	line := "@badge-info=;badges=turbo/1;color=#9ACD32;display-name=TestChannel;emotes=;id=3d830f12-795c-447d-af3c-ea05e40fbddb;login=testchannel;mod=0;msg-id=raid;msg-param-displayName=TestChannel;msg-param-login=testchannel;msg-param-viewerCount=15;room-id=33332222;subscriber=0;system-msg=15sraiderssfromsTestChannelshavesjoined\n!;tmi-sent-ts=1507246572675;turbo=1;user-id=123456;user-type= :tmi.twitch.tv USERNOTICE #othertestchannel"
	cmd := Parse(line, testCatalogs())
	require.IsType(t, &RaidNotice{}, cmd)
	msg := cmd.(*RaidNotice)

	assert.Equal(t, VerbUserNotice, msg.Verb())
	assert.Equal(t, UserNoticeKindRaid, msg.Kind)
	assert.Equal(t, RaidParams{
		DisplayName: "TestChannel",
		Login:       "testchannel",
		ViewerCount: 15,
	}, msg.Params)
	assert.Equal(t, "15sraiderssfromsTestChannelshavesjoined\n!", msg.Tags.SystemMsg)
	assert.Equal(t, 15, msg.TagMap.Int("msgParamViewerCount"))
	assert.Equal(t, "othertestchannel", msg.Channel)
	assert.Equal(t, UserTypeNormal, msg.Tags.UserType)
	assert.Equal(t, []Emote{}, msg.Tags.Emotes)
	assert.Equal(t, "", msg.Text)

	var notice AnyUserNotice = msg
	assert.Equal(t, "testchannel", notice.Notice().Tags.Login)
}

func TestParse_UserNotice_resub(t *testing.T) {
	line := `@badge-info=subscriber/13;badges=subscriber/12;color=#0000FF;display-name=ronni;emotes=;id=db25007f-7a18-43eb-9379-80131e44d633;login=ronni;mod=0;msg-id=resub;msg-param-cumulative-months=13;msg-param-should-share-streak=1;msg-param-streak-months=5;msg-param-sub-plan=Prime;msg-param-sub-plan-name=Prime\sSubscription;room-id=12345678;subscriber=1;system-msg=ronni\shas\ssubscribed\sfor\s13\smonths!;tmi-sent-ts=1507246572675;turbo=1;user-id=87654321;user-type=staff :tmi.twitch.tv USERNOTICE #dallas :Great stream -- keep it up!`
	cmd := Parse(line, testCatalogs())
	require.IsType(t, &SubNotice{}, cmd)
	msg := cmd.(*SubNotice)

	assert.Equal(t, UserNoticeKindResub, msg.Kind)
	assert.Equal(t, SubParams{
		CumulativeMonths:  13,
		ShouldShareStreak: true,
		StreakMonths:      5,
		SubPlan:           SubPlanPrime,
		SubPlanName:       "Prime Subscription",
	}, msg.Params)
	assert.Equal(t, "Great stream -- keep it up!", msg.Text)
	assert.Equal(t, "ronni has subscribed for 13 months!", msg.SystemMessage())
	assert.Equal(t, []Badge{{Name: "subscriber", ID: "12"}}, msg.Tags.Badges)
}

func TestParse_UserNotice_kinds(t *testing.T) {
	prefix := "@login=ronni;room-id=12345678;"
	suffix := " :tmi.twitch.tv USERNOTICE #dallas"
	tests := []struct {
		name string
		tags string
		want Command
	}{
		{
			"sub",
			"msg-id=sub;msg-param-cumulative-months=1;msg-param-sub-plan=1000",
			&SubNotice{Params: SubParams{CumulativeMonths: 1, SubPlan: SubPlanTier1}},
		},
		{
			"subgift",
			"msg-id=subgift;msg-param-months=3;msg-param-recipient-display-name=Mr_Woodchuck;msg-param-recipient-id=55554444;msg-param-recipient-user-name=mr_woodchuck;msg-param-sub-plan=2000;msg-param-gift-months=1",
			&SubGiftNotice{Params: SubGiftParams{
				Months:               3,
				RecipientDisplayName: "Mr_Woodchuck",
				RecipientID:          "55554444",
				RecipientUserName:    "mr_woodchuck",
				SubPlan:              SubPlanTier2,
				GiftMonths:           1,
			}},
		},
		{
			"submysterygift",
			"msg-id=submysterygift;msg-param-mass-gift-count=5;msg-param-sender-count=25;msg-param-sub-plan=1000",
			&SubMysteryGiftNotice{Params: SubMysteryGiftParams{MassGiftCount: 5, SenderCount: 25, SubPlan: SubPlanTier1}},
		},
		{
			"giftpaidupgrade",
			"msg-id=giftpaidupgrade;msg-param-sender-login=bigjoe;msg-param-sender-name=BigJoe",
			&GiftPaidUpgradeNotice{Params: GiftPaidUpgradeParams{SenderLogin: "bigjoe", SenderName: "BigJoe"}},
		},
		{
			"anongiftpaidupgrade",
			`msg-id=anongiftpaidupgrade;msg-param-promo-gift-total=4;msg-param-promo-name=Subtember\s2018`,
			&AnonGiftPaidUpgradeNotice{Params: AnonGiftPaidUpgradeParams{PromoGiftTotal: 4, PromoName: "Subtember 2018"}},
		},
		{
			"unraid",
			"msg-id=unraid",
			&UnraidNotice{},
		},
		{
			"ritual",
			"msg-id=ritual;msg-param-ritual-name=new_chatter",
			&RitualNotice{Params: RitualParams{RitualName: "new_chatter"}},
		},
		{
			"bitsbadgetier",
			"msg-id=bitsbadgetier;msg-param-threshold=10000",
			&BitsBadgeTierNotice{Params: BitsBadgeTierParams{Threshold: 10000}},
		},
		{
			"unmodeled kind falls back to a generic notice",
			"msg-id=rewardgift",
			&UserNotice{},
		},
		{
			"missing kind falls back to a generic notice",
			"",
			&UserNotice{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(prefix+tt.tags+suffix, Catalogs{})
			assert.IsType(t, tt.want, got)
			assert.Equal(t, VerbUserNotice, got.Verb())

			notice, ok := got.(AnyUserNotice)
			require.True(t, ok)
			assert.Equal(t, "dallas", notice.Notice().Channel)
			assert.Equal(t, "ronni", notice.Notice().Tags.Login)

			switch want := tt.want.(type) {
			case *SubNotice:
				assert.Equal(t, want.Params, got.(*SubNotice).Params)
			case *SubGiftNotice:
				assert.Equal(t, want.Params, got.(*SubGiftNotice).Params)
			case *SubMysteryGiftNotice:
				assert.Equal(t, want.Params, got.(*SubMysteryGiftNotice).Params)
			case *GiftPaidUpgradeNotice:
				assert.Equal(t, want.Params, got.(*GiftPaidUpgradeNotice).Params)
			case *AnonGiftPaidUpgradeNotice:
				assert.Equal(t, want.Params, got.(*AnonGiftPaidUpgradeNotice).Params)
			case *RitualNotice:
				assert.Equal(t, want.Params, got.(*RitualNotice).Params)
			case *BitsBadgeTierNotice:
				assert.Equal(t, want.Params, got.(*BitsBadgeTierNotice).Params)
			}
		})
	}
}

func TestParse_UserState(t *testing.T) {
	cmd := Parse("@badge-info=;badges=staff/1;color=#0D4200;display-name=ronni;emote-sets=0,33,50,237,793,2126,3517,4578,5569,9400,10337,12239;mod=1;subscriber=1;turbo=1;user-type=staff :tmi.twitch.tv USERSTATE #dallas", testCatalogs())
	require.IsType(t, &UserState{}, cmd)
	msg := cmd.(*UserState)

	assert.Equal(t, VerbUserState, msg.Verb())
	assert.Equal(t, "dallas", msg.Channel)
	assert.Equal(t, []Badge{{Name: "staff", ID: "1", Images: &globalStaff1}}, msg.Tags.Badges)
	assert.True(t, msg.Tags.Mod)
	assert.True(t, msg.Tags.Subscriber)
	assert.Equal(t, UserTypeStaff, msg.Tags.UserType)
}

func TestParse_Whisper(t *testing.T) {
	cmd := Parse("@badges=staff/1;color=#8A2BE2;display-name=PetsgomOO;emotes=;message-id=306;thread-id=12345678_87654321;turbo=0;user-id=87654321;user-type=staff :petsgomoo!petsgomoo@petsgomoo.tmi.twitch.tv WHISPER foo :hello", testCatalogs())
	require.IsType(t, &Whisper{}, cmd)
	msg := cmd.(*Whisper)

	assert.Equal(t, "306", msg.Tags.MessageID)
	assert.Equal(t, "12345678_87654321", msg.Tags.ThreadID)
	assert.Equal(t, "foo", msg.FromUser)
	assert.Equal(t, "petsgomoo", msg.Source.UserName)
	assert.Equal(t, "hello", msg.Message)
}

func TestParse_HostTarget(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantHosted  *string
		wantViewers int
	}{
		{"hosting started", ":tmi.twitch.tv HOSTTARGET #abc :xyz 10", strPtr("xyz"), 10},
		{"hosting ended", ":tmi.twitch.tv HOSTTARGET #abc :- 0", nil, 0},
		{"malformed viewer count", ":tmi.twitch.tv HOSTTARGET #abc :xyz many", strPtr("xyz"), 0},
		{"no param", ":tmi.twitch.tv HOSTTARGET #abc", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Parse(tt.line, Catalogs{})
			require.IsType(t, &HostTarget{}, cmd)
			msg := cmd.(*HostTarget)
			assert.Equal(t, "abc", msg.HostingChannel)
			assert.Equal(t, tt.wantHosted, msg.HostedChannel)
			assert.Equal(t, tt.wantViewers, msg.NumberOfViewers)
		})
	}
}

func TestParse_sessionCommands(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Command
	}{
		{
			"reconnect",
			":tmi.twitch.tv RECONNECT",
			&Reconnect{Source: &Source{Host: "tmi.twitch.tv"}},
		},
		{
			"join",
			":ronni!ronni@ronni.tmi.twitch.tv JOIN #dallas",
			&Join{Source: &Source{Host: "ronni.tmi.twitch.tv", UserName: "ronni"}, Channel: "dallas", User: "ronni"},
		},
		{
			"part",
			":ronni!ronni@ronni.tmi.twitch.tv PART #dallas",
			&Part{Source: &Source{Host: "ronni.tmi.twitch.tv", UserName: "ronni"}, Channel: "dallas", User: "ronni"},
		},
		{
			"ping",
			"PING :tmi.twitch.tv",
			&Ping{Token: "tmi.twitch.tv"},
		},
		{
			"welcome",
			":tmi.twitch.tv 001 justinfan123 :Welcome, GLHF!",
			&Info{Source: &Source{Host: "tmi.twitch.tv"}, Code: "001", Params: "justinfan123 :Welcome, GLHF!"},
		},
		{
			"capability acknowledgement",
			":tmi.twitch.tv CAP * ACK :twitch.tv/tags twitch.tv/commands",
			&Info{Source: &Source{Host: "tmi.twitch.tv"}, Code: "CAP", Params: "* ACK :twitch.tv/tags twitch.tv/commands"},
		},
		{
			"lowercase verb",
			":tmi.twitch.tv reconnect",
			&Reconnect{Source: &Source{Host: "tmi.twitch.tv"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.line, Catalogs{}))
		})
	}
}

func TestParse_unknown(t *testing.T) {
	tests := []struct {
		name string
		line string
		want *Unknown
	}{
		{
			"unsupported verb",
			"@foo-bar=1 :tmi.twitch.tv FUTURECOMMAND #dallas :some text",
			&Unknown{
				Source:  &Source{Host: "tmi.twitch.tv"},
				Command: "FUTURECOMMAND",
				Channel: "dallas",
				Params:  ":some text",
				TagMap:  Tags{"fooBar": "1"},
			},
		},
		{
			"empty line",
			"",
			&Unknown{TagMap: Tags{}},
		},
		{
			"whitespace only",
			"   \r\n",
			&Unknown{TagMap: Tags{}},
		},
		{
			"four-digit numeric verb",
			"1234",
			&Unknown{Command: "1234", TagMap: Tags{}},
		},
		{
			"dangling tag block",
			"@",
			&Unknown{TagMap: Tags{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				got := Parse(tt.line, Catalogs{})
				assert.Equal(t, VerbUnknown, got.Verb())
				assert.Equal(t, tt.want, got)
			})
		})
	}
}

func TestParse_idempotent(t *testing.T) {
	catalogs := testCatalogs()
	line := "@badge-info=subscriber/8;badges=subscriber/6,turbo/1;emotes=25:0-4;tmi-sent-ts=1507246572675 :ronni!ronni@ronni.tmi.twitch.tv PRIVMSG #dallas :Kappa"
	assert.Equal(t, Parse(line, catalogs), Parse(line, catalogs))
}

func TestParse_concurrent(t *testing.T) {
	catalogs := testCatalogs()
	line := "@badges=subscriber/6 :ronni!ronni@ronni.tmi.twitch.tv PRIVMSG #dallas :hi"
	want := Parse(line, catalogs)

	var wg sync.WaitGroup
	results := make([]Command, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Parse(line, catalogs)
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestParseBatch(t *testing.T) {
	raw := strings.Join([]string{
		":tmi.twitch.tv CAP * ACK :twitch.tv/tags",
		"",
		":tmi.twitch.tv 001 justinfan123 :Welcome, GLHF!",
		"@room-id=1 :tmi.twitch.tv ROOMSTATE #dallas",
		":ronni!ronni@ronni.tmi.twitch.tv PRIVMSG #dallas :hello",
		"PING :tmi.twitch.tv",
	}, "\r\n") + "\r\n"

	got := ParseBatch(raw, Catalogs{})
	require.Len(t, got, 5)
	assert.Equal(t, VerbInfo, got[0].Verb())
	assert.Equal(t, VerbInfo, got[1].Verb())
	assert.Equal(t, VerbRoomState, got[2].Verb())
	assert.Equal(t, VerbPrivateMessage, got[3].Verb())
	assert.Equal(t, "hello", got[3].(*PrivateMessage).Text)
	assert.Equal(t, &Ping{Token: "tmi.twitch.tv"}, got[4])
}

func TestParseBatch_empty(t *testing.T) {
	assert.Empty(t, ParseBatch("", Catalogs{}))
	assert.Empty(t, ParseBatch("\r\n\r\n", Catalogs{}))
}

func strPtr(s string) *string {
	return &s
}

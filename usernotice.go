package tmi

import "time"

// UserNoticeKind is the 'msg-id' tag of a USERNOTICE, which determines which kind of
// event the notice describes
type UserNoticeKind string

const (
	UserNoticeKindSub                 UserNoticeKind = "sub"
	UserNoticeKindResub               UserNoticeKind = "resub"
	UserNoticeKindSubGift             UserNoticeKind = "subgift"
	UserNoticeKindSubMysteryGift      UserNoticeKind = "submysterygift"
	UserNoticeKindGiftPaidUpgrade     UserNoticeKind = "giftpaidupgrade"
	UserNoticeKindRewardGift          UserNoticeKind = "rewardgift"
	UserNoticeKindAnonGiftPaidUpgrade UserNoticeKind = "anongiftpaidupgrade"
	UserNoticeKindRaid                UserNoticeKind = "raid"
	UserNoticeKindUnraid              UserNoticeKind = "unraid"
	UserNoticeKindRitual              UserNoticeKind = "ritual"
	UserNoticeKindBitsBadgeTier       UserNoticeKind = "bitsbadgetier"
)

// SubPlan identifies the tier of a subscription
type SubPlan string

const (
	SubPlanPrime SubPlan = "Prime"
	SubPlanTier1 SubPlan = "1000"
	SubPlanTier2 SubPlan = "2000"
	SubPlanTier3 SubPlan = "3000"
)

// UserNoticeTags are the tags common to every USERNOTICE, regardless of kind
type UserNoticeTags struct {
	BadgeInfo   *BadgeInfo     `json:"badgeInfo,omitempty"`
	Badges      []Badge        `json:"badges"`
	Color       string         `json:"color"`
	DisplayName string         `json:"displayName"`
	Emotes      []Emote        `json:"emotes"`
	ID          string         `json:"id"`
	Login       string         `json:"login"`
	Mod         bool           `json:"mod"`
	MsgID       UserNoticeKind `json:"msgId"`
	RoomID      string         `json:"roomId"`
	Subscriber  bool           `json:"subscriber"`
	SystemMsg   string         `json:"systemMsg"`
	TmiSentTs   time.Time      `json:"tmiSentTs"`
	Turbo       bool           `json:"turbo"`
	UserID      string         `json:"userId"`
	UserType    UserType       `json:"userType"`
}

// UserNotice is an event in a channel (a subscription, a raid, etc.) that Twitch
// announces on the user's behalf. Kinds that carry additional parameters are parsed as
// one of the more specific types that embed UserNotice; any other kind is returned as a
// plain *UserNotice.
type UserNotice struct {
	Source  *Source        `json:"source,omitempty"`
	Channel string         `json:"channel"`
	Kind    UserNoticeKind `json:"kind"`
	Tags    UserNoticeTags `json:"tags"`
	TagMap  Tags           `json:"tagMap,omitempty"`

	// Text is the message the user chose to attach, if any
	Text string `json:"text,omitempty"`
}

func (UserNotice) Verb() Verb { return VerbUserNotice }
func (UserNotice) command()   {}

// Notice returns the fields shared by all USERNOTICE kinds
func (n *UserNotice) Notice() *UserNotice {
	return n
}

// SystemMessage returns the text that Twitch displays for the event, e.g. '15 raiders
// from TestChannel have joined!'
func (n *UserNotice) SystemMessage() string {
	return UnescapeTagValue(n.Tags.SystemMsg)
}

// AnyUserNotice is implemented by *UserNotice and by every kind-specific notice type
type AnyUserNotice interface {
	Command
	Notice() *UserNotice
}

// SubParams are the parameters of a 'sub' or 'resub' notice
type SubParams struct {
	CumulativeMonths  int     `json:"cumulativeMonths"`
	ShouldShareStreak bool    `json:"shouldShareStreak"`
	StreakMonths      int     `json:"streakMonths,omitempty"`
	SubPlan           SubPlan `json:"subPlan"`
	SubPlanName       string  `json:"subPlanName"`
}

// SubNotice announces that a user has subscribed or resubscribed to the channel
type SubNotice struct {
	UserNotice
	Params SubParams `json:"params"`
}

// SubGiftParams are the parameters of a 'subgift' notice
type SubGiftParams struct {
	Months               int     `json:"months"`
	RecipientDisplayName string  `json:"recipientDisplayName"`
	RecipientID          string  `json:"recipientId"`
	RecipientUserName    string  `json:"recipientUserName"`
	SubPlan              SubPlan `json:"subPlan"`
	SubPlanName          string  `json:"subPlanName"`
	GiftMonths           int     `json:"giftMonths"`
}

// SubGiftNotice announces that a user has gifted a subscription to another user
type SubGiftNotice struct {
	UserNotice
	Params SubGiftParams `json:"params"`
}

// SubMysteryGiftParams are the parameters of a 'submysterygift' notice
type SubMysteryGiftParams struct {
	MassGiftCount int     `json:"massGiftCount"`
	SenderCount   int     `json:"senderCount,omitempty"`
	SubPlan       SubPlan `json:"subPlan"`
}

// SubMysteryGiftNotice announces that a user is gifting subscriptions to several
// random users in the channel; a SubGiftNotice follows for each recipient
type SubMysteryGiftNotice struct {
	UserNotice
	Params SubMysteryGiftParams `json:"params"`
}

// GiftPaidUpgradeParams are the parameters of a 'giftpaidupgrade' notice
type GiftPaidUpgradeParams struct {
	PromoGiftTotal int    `json:"promoGiftTotal,omitempty"`
	PromoName      string `json:"promoName,omitempty"`
	SenderLogin    string `json:"senderLogin"`
	SenderName     string `json:"senderName"`
}

// GiftPaidUpgradeNotice announces that a user is continuing a subscription that was
// originally gifted to them by another user
type GiftPaidUpgradeNotice struct {
	UserNotice
	Params GiftPaidUpgradeParams `json:"params"`
}

// AnonGiftPaidUpgradeParams are the parameters of an 'anongiftpaidupgrade' notice
type AnonGiftPaidUpgradeParams struct {
	PromoGiftTotal int    `json:"promoGiftTotal,omitempty"`
	PromoName      string `json:"promoName,omitempty"`
}

// AnonGiftPaidUpgradeNotice announces that a user is continuing a subscription that
// was originally gifted to them anonymously
type AnonGiftPaidUpgradeNotice struct {
	UserNotice
	Params AnonGiftPaidUpgradeParams `json:"params"`
}

// RaidParams are the parameters of a 'raid' notice
type RaidParams struct {
	DisplayName string `json:"displayName"`
	Login       string `json:"login"`
	ViewerCount int    `json:"viewerCount"`
}

// RaidNotice announces that another broadcaster has raided the channel
type RaidNotice struct {
	UserNotice
	Params RaidParams `json:"params"`
}

// UnraidNotice announces that a raid was canceled
type UnraidNotice struct {
	UserNotice
}

// RitualParams are the parameters of a 'ritual' notice
type RitualParams struct {
	RitualName string `json:"ritualName"`
}

// RitualNotice announces a ritual such as a new chatter's first message
type RitualNotice struct {
	UserNotice
	Params RitualParams `json:"params"`
}

// BitsBadgeTierParams are the parameters of a 'bitsbadgetier' notice
type BitsBadgeTierParams struct {
	Threshold int `json:"threshold"`
}

// BitsBadgeTierNotice announces that a user has earned a new bits badge tier
type BitsBadgeTierNotice struct {
	UserNotice
	Params BitsBadgeTierParams `json:"params"`
}

// buildUserNotice selects the notice type from the already-decoded msg-id tag
func buildUserNotice(base UserNotice) Command {
	t := base.TagMap
	switch base.Kind {
	case UserNoticeKindSub, UserNoticeKindResub:
		return &SubNotice{
			UserNotice: base,
			Params: SubParams{
				CumulativeMonths:  t.Int("msgParamCumulativeMonths"),
				ShouldShareStreak: t.Bool("msgParamShouldShareStreak"),
				StreakMonths:      t.Int("msgParamStreakMonths"),
				SubPlan:           SubPlan(t.String("msgParamSubPlan")),
				SubPlanName:       UnescapeTagValue(t.String("msgParamSubPlanName")),
			},
		}
	case UserNoticeKindSubGift:
		return &SubGiftNotice{
			UserNotice: base,
			Params: SubGiftParams{
				Months:               t.Int("msgParamMonths"),
				RecipientDisplayName: t.String("msgParamRecipientDisplayName"),
				RecipientID:          t.String("msgParamRecipientId"),
				RecipientUserName:    t.String("msgParamRecipientUserName"),
				SubPlan:              SubPlan(t.String("msgParamSubPlan")),
				SubPlanName:          UnescapeTagValue(t.String("msgParamSubPlanName")),
				GiftMonths:           t.Int("msgParamGiftMonths"),
			},
		}
	case UserNoticeKindSubMysteryGift:
		return &SubMysteryGiftNotice{
			UserNotice: base,
			Params: SubMysteryGiftParams{
				MassGiftCount: t.Int("msgParamMassGiftCount"),
				SenderCount:   t.Int("msgParamSenderCount"),
				SubPlan:       SubPlan(t.String("msgParamSubPlan")),
			},
		}
	case UserNoticeKindGiftPaidUpgrade:
		return &GiftPaidUpgradeNotice{
			UserNotice: base,
			Params: GiftPaidUpgradeParams{
				PromoGiftTotal: t.Int("msgParamPromoGiftTotal"),
				PromoName:      UnescapeTagValue(t.String("msgParamPromoName")),
				SenderLogin:    t.String("msgParamSenderLogin"),
				SenderName:     t.String("msgParamSenderName"),
			},
		}
	case UserNoticeKindAnonGiftPaidUpgrade:
		return &AnonGiftPaidUpgradeNotice{
			UserNotice: base,
			Params: AnonGiftPaidUpgradeParams{
				PromoGiftTotal: t.Int("msgParamPromoGiftTotal"),
				PromoName:      UnescapeTagValue(t.String("msgParamPromoName")),
			},
		}
	case UserNoticeKindRaid:
		return &RaidNotice{
			UserNotice: base,
			Params: RaidParams{
				DisplayName: t.String("msgParamDisplayName"),
				Login:       t.String("msgParamLogin"),
				ViewerCount: t.Int("msgParamViewerCount"),
			},
		}
	case UserNoticeKindUnraid:
		return &UnraidNotice{UserNotice: base}
	case UserNoticeKindRitual:
		return &RitualNotice{
			UserNotice: base,
			Params: RitualParams{
				RitualName: t.String("msgParamRitualName"),
			},
		}
	case UserNoticeKindBitsBadgeTier:
		return &BitsBadgeTierNotice{
			UserNotice: base,
			Params: BitsBadgeTierParams{
				Threshold: t.Int("msgParamThreshold"),
			},
		}
	}
	return &base
}

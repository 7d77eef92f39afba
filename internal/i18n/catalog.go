package i18n

// catalogs holds the message templates per language. English is complete;
// other languages fall back to it key by key.
var catalogs = map[string]map[string]string{
	"en": {
		// generic
		"error.no_permission": "🚫 You do not have permission to use this command.",

		// music
		"music.not_in_voice":    "❌ You must be in a voice channel to play music.",
		"music.nothing_playing": "📭 Nothing is playing right now.",
		"music.search_failed":   "❌ Search failed: %v",
		"music.no_results":      "❌ No results found for: **%s**",
		"music.added_to_queue":  "🎵 Added to queue: **%s** — %s",
		"music.join_failed":     "❌ Failed to join voice: %v",
		"music.now_playing":     "🎶 Now Playing",
		"music.queue_title":     "📋 Queue",
		"music.queue_empty":     "Queue is empty.",
		"music.up_next":         "**Up Next:**",
		"music.skipped":         "⏭️ Skipped **%s**",
		"music.stopped":         "⏹️ Stopped playback and left the voice channel.",
		"music.paused":          "⏸️ Paused.",
		"music.resumed":         "▶️ Resumed.",
		"music.volume_current":  "🔊 Current volume is **%d%%**.",
		"music.volume_set":      "🔊 Volume set to **%d%%**.",

		// captions
		"caption.fetching":     "📥 Fetching captions for **%s**...",
		"caption.fetch_failed": "❌ Could not fetch captions: %v",
		"caption.parse_failed": "❌ Cannot read caption file for **%s**.",
		"caption.empty":        "📭 No caption text found for **%s**.",

		// ragnarok lookups
		"ro.lookup_failed":  "❌ Lookup failed: %v",
		"ro.item_title":     "📦 Item #%d: %s",
		"ro.monster_title":  "👾 Monster #%d: %s",
		"ro.not_configured": "❌ Ragnarok database lookups are not configured.",

		// fun
		"fun.8ball_failed": "🎱 The eight ball is cloudy. Try again later.",
		"fun.8ball_answer": "🎱 **%s**\n%s",
		"fun.roll_result":  "🎲 You rolled **%d** (1-%d).",

		// permission management
		"perm.db_unavailable": "❌ Database not initialized.",
		"perm.invalid_node":   "❌ Invalid permission node or category: `%s`",
		"perm.add_failed":     "❌ Failed to add any permissions.",
		"perm.granted_one":    "✅ Granted `%s` to **%s**.",
		"perm.granted_many":   "✅ Granted **%d** permission(s) to **%s**.",
		"perm.revoked_one":    "🗑️ Revoked `%s` from **%s**.",
		"perm.revoked_many":   "🗑️ Revoked **%d** permission(s) from **%s**.",
		"perm.list_header":    "📋 **Permissions for %s**:",
		"perm.list_empty":     "**%s** has no explicit permissions.",

		// settings
		"settings.language_set":     "✅ Guild language set to **%s**.",
		"settings.language_invalid": "❌ Unsupported language: **%s**. Available: %s",
		"settings.timesep_set":      "✅ Caption gap threshold set to **%d** seconds.",
		"settings.show":             "⚙️ Language: **%s** | Caption gap threshold: **%d**s",

		// event log
		"event.member_joined": "%s has joined the server.",
		"event.member_left":   "%s has left the server.",
		"event.joined_title":  "User Joined",
		"event.left_title":    "User Left",
	},

	"ko": {
		"error.no_permission": "🚫 이 명령어를 사용할 권한이 없습니다.",

		"music.not_in_voice":    "❌ 음악을 재생하려면 음성 채널에 있어야 합니다.",
		"music.nothing_playing": "📭 지금 재생 중인 곡이 없습니다.",
		"music.search_failed":   "❌ 검색 실패: %v",
		"music.no_results":      "❌ 검색 결과가 없습니다: **%s**",
		"music.added_to_queue":  "🎵 대기열에 추가됨: **%s** — %s",
		"music.join_failed":     "❌ 음성 채널 참가 실패: %v",
		"music.now_playing":     "🎶 재생 중",
		"music.queue_title":     "📋 대기열",
		"music.queue_empty":     "대기열이 비어 있습니다.",
		"music.up_next":         "**다음 곡:**",
		"music.skipped":         "⏭️ **%s** 건너뜀",
		"music.stopped":         "⏹️ 재생을 멈추고 음성 채널에서 나갔습니다.",
		"music.paused":          "⏸️ 일시정지.",
		"music.resumed":         "▶️ 다시 재생.",
		"music.volume_current":  "🔊 현재 볼륨은 **%d%%** 입니다.",
		"music.volume_set":      "🔊 볼륨을 **%d%%** 로 설정했습니다.",

		"caption.fetching":     "📥 **%s** 자막을 가져오는 중...",
		"caption.fetch_failed": "❌ 자막을 가져올 수 없습니다: %v",
		"caption.parse_failed": "❌ **%s** 자막 파일을 읽을 수 없습니다.",
		"caption.empty":        "📭 **%s** 자막 내용이 없습니다.",

		"ro.lookup_failed":  "❌ 조회 실패: %v",
		"ro.item_title":     "📦 아이템 #%d: %s",
		"ro.monster_title":  "👾 몬스터 #%d: %s",
		"ro.not_configured": "❌ 라그나로크 데이터베이스 조회가 설정되지 않았습니다.",

		"fun.8ball_failed": "🎱 매직 8볼이 흐립니다. 나중에 다시 시도하세요.",
		"fun.8ball_answer": "🎱 **%s**\n%s",
		"fun.roll_result":  "🎲 **%d** 이(가) 나왔습니다 (1-%d).",

		"perm.db_unavailable": "❌ 데이터베이스가 초기화되지 않았습니다.",
		"perm.invalid_node":   "❌ 잘못된 권한 노드 또는 카테고리: `%s`",
		"perm.add_failed":     "❌ 권한을 추가하지 못했습니다.",
		"perm.granted_one":    "✅ **%[2]s** 님에게 `%[1]s` 권한을 부여했습니다.",
		"perm.granted_many":   "✅ **%[2]s** 님에게 권한 **%[1]d**개를 부여했습니다.",
		"perm.revoked_one":    "🗑️ **%[2]s** 님의 `%[1]s` 권한을 회수했습니다.",
		"perm.revoked_many":   "🗑️ **%[2]s** 님의 권한 **%[1]d**개를 회수했습니다.",
		"perm.list_header":    "📋 **%s 님의 권한**:",
		"perm.list_empty":     "**%s** 님은 별도 권한이 없습니다.",

		"settings.language_set":     "✅ 서버 언어를 **%s** 로 설정했습니다.",
		"settings.language_invalid": "❌ 지원하지 않는 언어: **%s**. 가능: %s",
		"settings.timesep_set":      "✅ 자막 간격 기준을 **%d**초로 설정했습니다.",
		"settings.show":             "⚙️ 언어: **%s** | 자막 간격 기준: **%d**초",

		"event.member_joined": "%s 님이 서버에 들어왔습니다.",
		"event.member_left":   "%s 님이 서버를 떠났습니다.",
		"event.joined_title":  "입장",
		"event.left_title":    "퇴장",
	},
}

package hls

// Sample manifest content shared across test files
var (
	TestMasterManifest = `#EXTM3U
#EXT-X-VERSION:6
#EXT-X-STREAM-INF:BANDWIDTH=1280000,CODECS="avc1.42e00a,mp4a.40.2",RESOLUTION=852x480,FRAME-RATE=30,VIDEO-RANGE=SDR
480p.m3u8
#EXT-X-STREAM-INF:BANDWIDTH=2560000,CODECS="avc1.42e00a,mp4a.40.2",RESOLUTION=1280x720,FRAME-RATE=30,VIDEO-RANGE=SDR
720p.m3u8
#EXT-X-STREAM-INF:BANDWIDTH=5000000,CODECS="avc1.42e00a,mp4a.40.2",RESOLUTION=1920x1080,FRAME-RATE=60,VIDEO-RANGE=PQ
1080p.m3u8`

	TestSingleVariantManifest = `#EXTM3U
#EXT-X-STREAM-INF:BANDWIDTH=5000000,CODECS="avc1",RESOLUTION=1920x1080,FRAME-RATE=30,VIDEO-RANGE=SDR
1080p.m3u8`

	TestMediaManifest = `#EXTM3U
#EXT-X-VERSION:3
#EXT-X-TARGETDURATION:10
#EXT-X-MEDIA-SEQUENCE:0
#EXTINF:9.009,
segment0.ts
#EXTINF:9.009,
segment1.ts
#EXTINF:9.009,
segment2.ts
#EXT-X-ENDLIST`

	TestLiveMediaManifest = `#EXTM3U
#EXT-X-VERSION:3
#EXT-X-TARGETDURATION:10
#EXT-X-MEDIA-SEQUENCE:123456
#EXTINF:10.0,
segment123456.ts
#EXTINF:10.0,
segment123457.ts`

	// Variant declarations and segment references in one document; the
	// pattern extractor treats them independently.
	TestCombinedManifest = `#EXTM3U
#EXT-X-STREAM-INF:BANDWIDTH=1280000,CODECS="avc1.42e00a",RESOLUTION=852x480,FRAME-RATE=30,VIDEO-RANGE=SDR
#EXT-X-TARGETDURATION:10
#EXTINF:9.009,
segment0.ts
#EXTINF:9.009,
segment1.ts
#EXT-X-ENDLIST`

	TestManifestNoVariants = `#EXTM3U
#EXT-X-VERSION:3
#EXT-X-TARGETDURATION:10
#EXTINF:9.009,
segment0.ts
#EXT-X-ENDLIST`
)

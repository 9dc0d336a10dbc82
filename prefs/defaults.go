package prefs

import "runtime"

// DefaultPrefs returns the supplier-populated base value. Keys absent
// from the bundled resource keep these values after loading.
func DefaultPrefs() Prefs {
	var p Prefs
	p.Browser.Display.BackgroundColor = 0xFFFFFF
	p.Browser.Display.ForegroundColor = 0x000000
	p.Layout.Threads = defaultLayoutThreads()
	return p
}

// The number of layout threads is calculated if it is not present in
// the bundled resource.
func defaultLayoutThreads() int64 {
	n := int64(runtime.NumCPU()) * 3 / 4
	if n < 1 {
		return 1
	}
	return n
}

// requiredPaths lists the structural location of every leaf that has
// no default supplier; the loader rejects a resource missing any of
// them.
var requiredPaths = [][]string{
	{"devtools", "server", "enabled"},
	{"devtools", "server", "port"},
	{"dom", "webgpu", "enabled"},
	{"dom", "bluetooth", "enabled"},
	{"dom", "bluetooth", "testing", "enabled"},
	{"dom", "canvas_capture", "enabled"},
	{"dom", "canvas_text", "enabled"},
	{"dom", "composition_event", "dom.compositionevent.enabled"},
	{"dom", "custom_elements", "dom.customelements.enabled"},
	{"dom", "document", "dblclick_timeout"},
	{"dom", "document", "dblclick_dist"},
	{"dom", "forcetouch", "enabled"},
	{"dom", "fullscreen", "test"},
	{"dom", "gamepad", "enabled"},
	{"dom", "imagebitmap", "enabled"},
	{"dom", "microdata", "testing", "enabled"},
	{"dom", "mouse_event", "which", "dom.mouseevent.which.enabled"},
	{"dom", "mutation_observer", "enabled"},
	{"dom", "offscreen_canvas", "enabled"},
	{"dom", "permissions", "enabled"},
	{"dom", "permissions", "testing", "allowed_in_nonsecure_contexts"},
	{"dom", "script", "asynch"},
	{"dom", "serviceworker", "enabled"},
	{"dom", "serviceworker", "timeout_seconds"},
	{"dom", "debug_helpers", "enabled"},
	{"dom", "html_parser", "async_html_tokenizer", "enabled"},
	{"dom", "shadowdom", "enabled"},
	{"dom", "svg", "enabled"},
	{"dom", "testable_crash", "enabled"},
	{"dom", "testbinding", "enabled"},
	{"dom", "testing", "html_input_element", "select_files", "dom.testing.htmlinputelement.select_files.enabled"},
	{"dom", "webgl2", "enabled"},
	{"dom", "webrtc", "transceiver", "enabled"},
	{"dom", "webvtt", "enabled"},
	{"dom", "webxr", "first_person_observer_view"},
	{"dom", "webxr", "glwindow", "dom.webxr.glwindow.left-right"},
	{"dom", "webxr", "glwindow", "dom.webxr.glwindow.red-cyan"},
	{"dom", "webxr", "glwindow", "spherical"},
	{"dom", "webxr", "glwindow", "cubemap"},
	{"dom", "webxr", "layers", "enabled"},
	{"dom", "webxr", "sessionavailable"},
	{"dom", "webxr", "dom.webxr.unsafe-assume-user-intent"},
	{"dom", "worklet", "timeout_ms"},
	{"gfx", "subpixel_text_antialiasing", "gfx.subpixel-text-antialiasing.enabled"},
	{"gfx", "texture_swizzling", "gfx.texture-swizzling.enabled"},
	{"js", "asmjs", "enabled"},
	{"js", "asyncstack", "enabled"},
	{"js", "baseline", "enabled"},
	{"js", "baseline", "unsafe_eager_compilation", "enabled"},
	{"js", "discard_system_source", "enabled"},
	{"js", "dump_stack_on_debuggee_would_run", "enabled"},
	{"js", "ion", "enabled"},
	{"js", "ion", "offthread_compilation", "enabled"},
	{"js", "ion", "unsafe_eager_compilation", "enabled"},
	{"js", "mem", "gc", "allocation_threshold_mb"},
	{"js", "mem", "gc", "allocation_threshold_factor"},
	{"js", "mem", "gc", "allocation_threshold_avoid_interrupt_factor"},
	{"js", "mem", "gc", "compacting", "enabled"},
	{"js", "mem", "gc", "decommit_threshold_mb"},
	{"js", "mem", "gc", "dynamic_heap_growth", "enabled"},
	{"js", "mem", "gc", "dynamic_mark_slice", "enabled"},
	{"js", "mem", "gc", "empty_chunk_count_max"},
	{"js", "mem", "gc", "empty_chunk_count_min"},
	{"js", "mem", "gc", "high_frequency_heap_growth_max"},
	{"js", "mem", "gc", "high_frequency_heap_growth_min"},
	{"js", "mem", "gc", "high_frequency_high_limit_mb"},
	{"js", "mem", "gc", "high_frequency_low_limit_mb"},
	{"js", "mem", "gc", "high_frequency_time_limit_ms"},
	{"js", "mem", "gc", "incremental", "enabled"},
	{"js", "mem", "gc", "incremental", "slice_ms"},
	{"js", "mem", "gc", "low_frequency_heap_growth"},
	{"js", "mem", "gc", "per_zone", "enabled"},
	{"js", "mem", "gc", "zeal", "frequency"},
	{"js", "mem", "gc", "zeal", "level"},
	{"js", "mem", "max"},
	{"js", "native_regex", "enabled"},
	{"js", "offthread_compilation", "enabled"},
	{"js", "parallel_parsing", "enabled"},
	{"js", "shared_memory", "enabled"},
	{"js", "strict", "debug", "enabled"},
	{"js", "strict", "enabled"},
	{"js", "throw_on_asmjs_validation_failure", "enabled"},
	{"js", "throw_on_debuggee_would_run", "enabled"},
	{"js", "timers", "minimum_duration"},
	{"js", "wasm", "baseline", "enabled"},
	{"js", "wasm", "enabled"},
	{"js", "wasm", "ion", "enabled"},
	{"js", "werror", "enabled"},
	{"layout", "animations", "test", "enabled"},
	{"layout", "columns", "enabled"},
	{"layout", "flexbox", "enabled"},
	{"layout", "legacy_layout"},
	{"layout", "writing_mode", "layout.writing-mode.enabled"},
	{"media", "glvideo", "enabled"},
	{"media", "testing", "enabled"},
	{"network", "enforce_tls", "enabled"},
	{"network", "enforce_tls", "localhost"},
	{"network", "enforce_tls", "onion"},
	{"network", "http_cache", "network.http-cache.disabled"},
	{"network", "mime", "sniff"},
	{"session_history", "session-history.max-length"},
	{"shell", "background_color", "shell.background-color.rgba"},
	{"shell", "crash_reporter", "enabled"},
	{"shell", "homepage"},
	{"shell", "keep_screen_on", "enabled"},
	{"shell", "shell.native-orientation"},
	{"shell", "native_titlebar", "shell.native-titlebar.enabled"},
	{"shell", "searchpage"},
	{"webgl", "testing", "context_creation_error"},
}
